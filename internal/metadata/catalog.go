package metadata

import "context"

// Catalog is the remote metadata provider the planner depends on.
//
// Searches return the provider's preferred match, nil when the result set is
// empty, and an error only on transport or API failure. Callers treat the
// detail lookups (external ids, episode titles) as best-effort and the
// searches as authoritative.
type Catalog interface {
	// SearchMovie returns the first-ranked movie for the query. A non-zero
	// year is passed to the provider as a filter hint.
	SearchMovie(ctx context.Context, title string, year int) (*MovieResult, error)

	// SearchSeries returns the series whose normalized name exactly matches
	// the normalized query when one exists, otherwise the first-ranked
	// result. A non-zero year filters on first air date.
	SearchSeries(ctx context.Context, title string, year int) (*SeriesResult, error)

	// EpisodeTitle returns the canonical title of one episode.
	EpisodeTitle(ctx context.Context, seriesID, season, episode int) (string, error)

	// MovieExternalID returns the IMDb id for a movie, empty when unknown.
	MovieExternalID(ctx context.Context, movieID int) (string, error)

	// SeriesExternalID returns the IMDb id for a series, empty when unknown.
	SeriesExternalID(ctx context.Context, seriesID int) (string, error)
}

// MovieResult represents a movie from a metadata provider.
type MovieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"releaseDate"` // YYYY-MM-DD, possibly empty
}

// SeriesResult represents a TV series from a metadata provider.
type SeriesResult struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FirstAirDate string `json:"firstAirDate"` // YYYY-MM-DD, possibly empty
}
