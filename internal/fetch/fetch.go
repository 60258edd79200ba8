package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"fastrinth/internal/modrinth"
	"fastrinth/internal/telemetry"
)

// Options tunes the download client.
type Options struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	ShowProgress bool
}

// Fetcher downloads version files into a single target directory.
type Fetcher struct {
	dir          string
	client       *http.Client
	showProgress bool
}

// New returns a Fetcher writing into dir. Transfers retry transient
// failures through a retryablehttp client configured from opts.
func New(dir string, opts Options) *Fetcher {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.Logger = nil

	return &Fetcher{
		dir:          dir,
		client:       rc.StandardClient(),
		showProgress: opts.ShowProgress,
	}
}

// Exists reports whether a file with this name is already present.
func (f *Fetcher) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(f.dir, filename))
	return err == nil
}

// Fetch downloads file into the target directory under its
// server-provided name. A same-named file already on disk satisfies the
// request without any network access; skipped reports that case.
func (f *Fetcher) Fetch(ctx context.Context, file modrinth.File) (skipped bool, err error) {
	name := filepath.Base(file.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return false, fmt.Errorf("unusable filename %q", file.Filename)
	}
	if f.Exists(name) {
		log.Info().Str("file", name).Msg("already present, skipping download")
		return true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return false, err
	}
	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		telemetry.Event("download", map[string]string{
			"file":        name,
			"status":      "error",
			"duration_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
		})
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("download %s: unexpected status %s", name, resp.Status)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return false, err
	}
	part := filepath.Join(f.dir, name+".part")
	out, err := os.Create(part)
	if err != nil {
		return false, err
	}

	var dst io.Writer = out
	if f.showProgress {
		bar := progressbar.DefaultBytes(resp.ContentLength, name)
		dst = io.MultiWriter(out, bar)
	}
	n, err := io.Copy(dst, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(part)
		return false, err
	}
	if err := os.Rename(part, filepath.Join(f.dir, name)); err != nil {
		os.Remove(part)
		return false, err
	}

	telemetry.Event("download", map[string]string{
		"file":        name,
		"status":      strconv.Itoa(resp.StatusCode),
		"duration_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	})
	log.Info().
		Str("file", name).
		Str("size", bytesize.New(float64(n)).String()).
		Msg("downloaded")
	return false, nil
}
