package planner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/renamarr/renamarr/internal/metadata"
	"github.com/renamarr/renamarr/internal/scanner"
)

// ErrNotDirectory is returned when the scan root exists but is not a
// directory.
var ErrNotDirectory = errors.New("scan root is not a directory")

// Entry is one rename in a plan. Paths are slash-normalized and relative to
// the scan root; for the root folder itself both paths are its base name.
type Entry struct {
	OldRelPath string
	NewRelPath string
}

// Plan is the ordered output of one scan. Folders holds season entries in
// first-seen order with the root entry (when present) last; Files holds one
// entry per file in traversal order, identity entries included. The executor
// consumes the two sequences in order: files, then non-root folders, then the
// root folder.
type Plan struct {
	Folders []Entry
	Files   []Entry
}

// Engine builds rename plans by parsing filenames and enriching them against
// a metadata catalog.
type Engine struct {
	catalog metadata.Catalog
	logger  zerolog.Logger
}

// NewEngine creates a new plan engine.
func NewEngine(catalog metadata.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logger.With().Str("component", "planner").Logger(),
	}
}

// Scan walks root and produces a rename plan. Primary catalog searches that
// fail abort the scan; secondary lookups (external ids, episode titles)
// degrade to absent fields. The plan is recomputed from scratch on every
// call.
func (e *Engine) Scan(ctx context.Context, root string) (*Plan, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	layout, err := ClassifyLayout(root)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", root, err)
	}

	e.logger.Debug().
		Str("root", root).
		Stringer("layout", layout).
		Msg("classified scan root")

	plan := &Plan{}

	switch layout {
	case LayoutSingleMovie:
		entry, err := e.movieFolderEntry(ctx, root)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			plan.Folders = append(plan.Folders, *entry)
		}
	case LayoutShow:
		folders, err := e.showFolderEntries(ctx, root)
		if err != nil {
			return nil, err
		}
		plan.Folders = folders
	}

	err = walkFiles(root, func(relDir, name string) error {
		newName, err := e.fileNewName(ctx, name)
		if err != nil {
			return err
		}
		plan.Files = append(plan.Files, Entry{
			OldRelPath: path.Join(relDir, name),
			NewRelPath: path.Join(relDir, newName),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("root", root).
		Int("folders", len(plan.Folders)).
		Int("files", len(plan.Files)).
		Msg("scan complete")

	return plan, nil
}

// movieFolderEntry names the root folder of a single-movie layout after its
// one file. No entry is produced when the file does not parse as a movie or
// the catalog has no match; the folder then keeps its name.
func (e *Engine) movieFolderEntry(ctx context.Context, root string) (*Entry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var filename string
	for _, entry := range entries {
		if !entry.IsDir() {
			filename = entry.Name()
			break
		}
	}

	movie := scanner.ParseMovie(filename)
	if movie == nil {
		return nil, nil
	}

	result, err := e.catalog.SearchMovie(ctx, movie.Title, movie.Year)
	if err != nil {
		return nil, fmt.Errorf("movie search %q: %w", movie.Title, err)
	}
	if result == nil {
		return nil, nil
	}

	newName := fmt.Sprintf("%s (%s)", result.Title, releaseYear(result.ReleaseDate))
	newName += e.externalIDSuffix(ctx, result.ID, e.catalog.MovieExternalID)

	return &Entry{OldRelPath: filepath.Base(root), NewRelPath: newName}, nil
}

// showFolderEntries names the root and season folders of a show layout from
// the first file that parses as an episode. Season folders are the immediate
// subdirectories containing parsed episode files anywhere below them; when
// files in one subdirectory disagree on the season, the last one visited
// wins.
func (e *Engine) showFolderEntries(ctx context.Context, root string) ([]Entry, error) {
	var first *scanner.EpisodeCandidate
	err := walkFiles(root, func(relDir, name string) error {
		if episode := scanner.ParseEpisode(name); episode != nil {
			first = episode
			return errStopWalk
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if first == nil {
		e.logger.Debug().Str("root", root).Msg("no episode files found, leaving folders untouched")
		return nil, nil
	}

	result, err := e.catalog.SearchSeries(ctx, first.Show, 0)
	if err != nil {
		return nil, fmt.Errorf("series search %q: %w", first.Show, err)
	}

	newShow := first.Show
	if result != nil {
		newShow = result.Name
		if year := releaseYear(result.FirstAirDate); year != "" {
			newShow = fmt.Sprintf("%s (%s)", result.Name, year)
		}
		newShow += e.externalIDSuffix(ctx, result.ID, e.catalog.SeriesExternalID)
	}

	var seasonDirs []string
	seasons := map[string]int{}
	err = walkFiles(root, func(relDir, name string) error {
		if relDir == "" {
			return nil
		}
		episode := scanner.ParseEpisode(name)
		if episode == nil {
			return nil
		}
		seasonDir, _, _ := strings.Cut(relDir, "/")
		if _, seen := seasons[seasonDir]; !seen {
			seasonDirs = append(seasonDirs, seasonDir)
		}
		seasons[seasonDir] = episode.Season
		return nil
	})
	if err != nil {
		return nil, err
	}

	folders := make([]Entry, 0, len(seasonDirs)+1)
	for _, dir := range seasonDirs {
		folders = append(folders, Entry{
			OldRelPath: dir,
			NewRelPath: fmt.Sprintf("Season %02d", seasons[dir]),
		})
	}

	// The root entry goes last so the executor can apply the sequence in
	// order without invalidating descendant paths.
	folders = append(folders, Entry{OldRelPath: filepath.Base(root), NewRelPath: newShow})

	return folders, nil
}

// externalIDSuffix formats the Plex-style " {imdb-<id>}" folder suffix.
// Lookup failures and unknown ids degrade to an empty suffix.
func (e *Engine) externalIDSuffix(ctx context.Context, id int, lookup func(context.Context, int) (string, error)) string {
	imdb, err := lookup(ctx, id)
	if err != nil {
		e.logger.Debug().Err(err).Int("id", id).Msg("external id lookup failed, naming without it")
		return ""
	}
	if imdb == "" {
		return ""
	}
	return fmt.Sprintf(" {imdb-%s}", imdb)
}
