package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/renamarr/renamarr/internal/pathutil"
	"github.com/renamarr/renamarr/internal/planner"
)

// ItemError is one failed rename from a batch.
type ItemError struct {
	Label string
	Err   error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

// Service applies rename plans to the filesystem.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new rename executor.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger.With().Str("component", "organizer").Logger(),
	}
}

// Apply renames everything in the plan: file entries first in plan order,
// then folder entries except the root, then the root folder as a sibling of
// root. The root must go last; renaming it earlier would invalidate the
// relative paths of every other entry. Failures are collected per item and
// never abort the batch; an empty slice means full success.
func (s *Service) Apply(root string, plan *planner.Plan) []ItemError {
	var errs []ItemError
	rootBase := filepath.Base(root)

	for _, entry := range plan.Files {
		src := pathutil.Resolve(root, entry.OldRelPath)
		dst := pathutil.Resolve(root, entry.NewRelPath)
		if err := s.renameFile(src, dst); err != nil {
			errs = append(errs, ItemError{Label: "file " + entry.OldRelPath, Err: err})
			continue
		}
		s.logger.Debug().
			Str("old", entry.OldRelPath).
			Str("new", entry.NewRelPath).
			Msg("renamed file")
	}

	for _, entry := range plan.Folders {
		if entry.OldRelPath == rootBase {
			continue
		}
		src := pathutil.Resolve(root, entry.OldRelPath)
		dst := pathutil.Resolve(root, entry.NewRelPath)
		if err := os.Rename(src, dst); err != nil {
			errs = append(errs, ItemError{Label: "folder " + entry.OldRelPath, Err: err})
			continue
		}
		s.logger.Debug().
			Str("old", entry.OldRelPath).
			Str("new", entry.NewRelPath).
			Msg("renamed folder")
	}

	for _, entry := range plan.Folders {
		if entry.OldRelPath != rootBase {
			continue
		}
		dst := filepath.Join(filepath.Dir(root), entry.NewRelPath)
		if err := os.Rename(root, dst); err != nil {
			errs = append(errs, ItemError{Label: "root folder " + entry.OldRelPath, Err: err})
			continue
		}
		s.logger.Info().
			Str("old", root).
			Str("new", dst).
			Msg("renamed root folder")
	}

	if len(errs) == 0 {
		s.logger.Info().
			Int("files", len(plan.Files)).
			Int("folders", len(plan.Folders)).
			Msg("rename batch complete")
	} else {
		s.logger.Warn().
			Int("failed", len(errs)).
			Msg("rename batch completed with errors")
	}

	return errs
}

// renameFile renames one file, creating intermediate destination directories
// as needed.
func (s *Service) renameFile(src, dst string) error {
	if err := s.ensureDestDir(dst); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

// ensureDestDir creates the destination's directory if needed.
func (s *Service) ensureDestDir(destPath string) error {
	destDir := filepath.Dir(destPath)

	if info, err := os.Stat(destDir); err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	return nil
}
