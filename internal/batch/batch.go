package batch

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"fastrinth/internal/modrinth"
)

// Status is the terminal state of one mod name after a run.
type Status string

const (
	StatusPending      Status = "pending"
	StatusUnresolved   Status = "unresolved"
	StatusUnselectable Status = "unselectable"
	StatusDownloaded   Status = "downloaded"
	StatusSkipped      Status = "skipped"
	StatusFailed       Status = "failed"
)

// OK reports whether the status counts as success. A file already on
// disk satisfies the request, so Skipped is success.
func (s Status) OK() bool {
	return s == StatusDownloaded || s == StatusSkipped
}

// Result records the outcome for one mod name.
type Result struct {
	Name          string
	Slug          string
	Title         string
	VersionNumber string
	Filename      string
	Status        Status
	Err           error
}

type resolver interface {
	Resolve(ctx context.Context, name string) (slug, title string, err error)
	SelectVersion(ctx context.Context, slug, loader, gameVersion string) (*modrinth.Version, error)
}

type fetcher interface {
	Fetch(ctx context.Context, file modrinth.File) (skipped bool, err error)
}

// Driver runs the resolve, select, fetch pipeline for each mod name in
// order. Failures are recorded per name and never abort the batch.
type Driver struct {
	client      resolver
	fetcher     fetcher
	loader      string
	gameVersion string
}

// NewDriver wires a Driver from its collaborators.
func NewDriver(client resolver, f fetcher, loader, gameVersion string) *Driver {
	return &Driver{client: client, fetcher: f, loader: loader, gameVersion: gameVersion}
}

// Run processes names strictly sequentially and returns one Result per
// processed name. Context cancellation stops the loop between items;
// results gathered so far are returned.
func (d *Driver) Run(ctx context.Context, names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("batch interrupted")
			break
		}
		results = append(results, d.processOne(ctx, name))
	}
	return results
}

func (d *Driver) processOne(ctx context.Context, name string) Result {
	res := Result{Name: name, Status: StatusPending}
	log.Info().Str("mod", name).Msg("processing mod")

	slug, title, err := d.client.Resolve(ctx, name)
	if err != nil {
		res.Status = StatusUnresolved
		res.Err = err
		if errors.Is(err, modrinth.ErrNotFound) {
			log.Warn().Str("mod", name).Msg("no mod found")
		} else {
			log.Error().Err(err).Str("mod", name).Msg("search failed")
		}
		return res
	}
	res.Slug = slug
	res.Title = title
	log.Info().Str("mod", name).Str("slug", slug).Str("title", title).Msg("resolved mod")

	version, err := d.client.SelectVersion(ctx, slug, d.loader, d.gameVersion)
	if err != nil {
		res.Status = StatusUnselectable
		res.Err = err
		if errors.Is(err, modrinth.ErrNoCompatibleVersion) {
			log.Warn().
				Str("slug", slug).
				Str("loader", d.loader).
				Str("game_version", d.gameVersion).
				Msg("no compatible version")
		} else {
			log.Error().Err(err).Str("slug", slug).Msg("version lookup failed")
		}
		return res
	}
	if len(version.Files) == 0 {
		res.Status = StatusUnselectable
		res.Err = modrinth.ErrNoCompatibleVersion
		log.Warn().Str("slug", slug).Str("version", version.VersionNumber).Msg("version has no files")
		return res
	}
	res.VersionNumber = version.VersionNumber
	file := version.Files[0]
	res.Filename = file.Filename
	log.Info().Str("slug", slug).Str("version", version.VersionNumber).Msg("selected version")

	skipped, err := d.fetcher.Fetch(ctx, file)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		log.Error().Err(err).Str("slug", slug).Str("file", file.Filename).Msg("download failed")
		return res
	}
	if skipped {
		res.Status = StatusSkipped
	} else {
		res.Status = StatusDownloaded
	}
	return res
}
