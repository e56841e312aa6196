package planner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/renamarr/renamarr/internal/scanner"
)

// releaseYear extracts the leading year from a provider date string
// ("YYYY-MM-DD"). Short or empty strings are passed through as-is.
func releaseYear(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// fileNewName computes the normalized name for one file, extension preserved.
// Movie parsing is tried before episode parsing; files matching neither keep
// their name. Primary search errors propagate, episode-title lookups degrade
// to an absent title.
func (e *Engine) fileNewName(ctx context.Context, filename string) (string, error) {
	ext := filepath.Ext(filename)

	if movie := scanner.ParseMovie(filename); movie != nil {
		result, err := e.catalog.SearchMovie(ctx, movie.Title, movie.Year)
		if err != nil {
			return "", fmt.Errorf("movie search %q: %w", movie.Title, err)
		}
		if result != nil {
			if year := releaseYear(result.ReleaseDate); year != "" {
				return fmt.Sprintf("%s (%s)%s", result.Title, year, ext), nil
			}
			return result.Title + ext, nil
		}
		// Catalog miss: fall back to the parsed fields.
		if movie.Year != 0 {
			return fmt.Sprintf("%s (%d)%s", movie.Title, movie.Year, ext), nil
		}
		return movie.Title + ext, nil
	}

	if episode := scanner.ParseEpisode(filename); episode != nil {
		result, err := e.catalog.SearchSeries(ctx, episode.Show, 0)
		if err != nil {
			return "", fmt.Errorf("series search %q: %w", episode.Show, err)
		}
		seasonEp := fmt.Sprintf("S%02dE%02d", episode.Season, episode.Episode)
		if result == nil {
			return fmt.Sprintf("%s - %s%s", episode.Show, seasonEp, ext), nil
		}
		if title, err := e.catalog.EpisodeTitle(ctx, result.ID, episode.Season, episode.Episode); err == nil && title != "" {
			return fmt.Sprintf("%s - %s - %s%s", result.Name, seasonEp, title, ext), nil
		} else if err != nil {
			e.logger.Debug().Err(err).
				Str("show", result.Name).
				Str("episode", seasonEp).
				Msg("episode title lookup failed, naming without it")
		}
		return fmt.Sprintf("%s - %s%s", result.Name, seasonEp, ext), nil
	}

	return filename, nil
}
