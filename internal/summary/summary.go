package summary

import (
	"github.com/rs/zerolog/log"

	"fastrinth/internal/batch"
)

// Summary represents aggregated batch outcome counts.
type Summary struct {
	Total       int
	Downloaded  int
	Skipped     int
	Failed      int
	FailedNames []string
}

// Summarize computes counts from batch results. Downloaded and Skipped
// both count as success; everything else lands in Failed.
func Summarize(results []batch.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Status == batch.StatusDownloaded:
			s.Downloaded++
		case r.Status == batch.StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
			s.FailedNames = append(s.FailedNames, r.Name)
		}
	}
	return s
}

// Log prints the aggregate and, when present, the failed names.
func (s Summary) Log() {
	log.Info().
		Int("total", s.Total).
		Int("downloaded", s.Downloaded).
		Int("already_present", s.Skipped).
		Int("failed", s.Failed).
		Msg("batch summary")
	for _, name := range s.FailedNames {
		log.Warn().Str("mod", name).Msg("failed mod")
	}
}
