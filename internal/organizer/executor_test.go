package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamarr/renamarr/internal/planner"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestApply_FullShowPlan(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "Some.Show")
	writeFile(t, filepath.Join(root, "Season1", "Show.Name.S01E01.mkv"))
	writeFile(t, filepath.Join(root, "Season1", "Show.Name.S01E02.mkv"))

	plan := &planner.Plan{
		Folders: []planner.Entry{
			{OldRelPath: "Season1", NewRelPath: "Season 01"},
			// Root entry last; applying it earlier would break every
			// other path in the plan.
			{OldRelPath: "Some.Show", NewRelPath: "Show Name (2008)"},
		},
		Files: []planner.Entry{
			{OldRelPath: "Season1/Show.Name.S01E01.mkv", NewRelPath: "Season1/Show Name - S01E01 - Pilot.mkv"},
			{OldRelPath: "Season1/Show.Name.S01E02.mkv", NewRelPath: "Season1/Show Name - S01E02.mkv"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)
	require.Empty(t, errs)

	newRoot := filepath.Join(parent, "Show Name (2008)")
	assert.FileExists(t, filepath.Join(newRoot, "Season 01", "Show Name - S01E01 - Pilot.mkv"))
	assert.FileExists(t, filepath.Join(newRoot, "Season 01", "Show Name - S01E02.mkv"))
	assert.NoDirExists(t, root)
	assert.NoDirExists(t, filepath.Join(newRoot, "Season1"))
}

func TestApply_RootRenamedAsSibling(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "Inception.2010.1080p")
	writeFile(t, filepath.Join(root, "Inception.2010.1080p.mkv"))

	plan := &planner.Plan{
		Folders: []planner.Entry{
			{OldRelPath: "Inception.2010.1080p", NewRelPath: "Inception (2010) {imdb-tt1375666}"},
		},
		Files: []planner.Entry{
			{OldRelPath: "Inception.2010.1080p.mkv", NewRelPath: "Inception (2010).mkv"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)
	require.Empty(t, errs)

	assert.FileExists(t, filepath.Join(parent, "Inception (2010) {imdb-tt1375666}", "Inception (2010).mkv"))
	assert.NoDirExists(t, root)
}

func TestApply_CreatesIntermediateDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "extra.srt"))

	plan := &planner.Plan{
		Files: []planner.Entry{
			{OldRelPath: "extra.srt", NewRelPath: "Extras/Subs/extra.srt"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)
	require.Empty(t, errs)
	assert.FileExists(t, filepath.Join(root, "Extras", "Subs", "extra.srt"))
}

func TestApply_IdentityEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.txt"))

	plan := &planner.Plan{
		Files: []planner.Entry{
			{OldRelPath: "readme.txt", NewRelPath: "readme.txt"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)
	assert.Empty(t, errs)
	assert.FileExists(t, filepath.Join(root, "readme.txt"))
}

func TestApply_AccumulatesErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.mkv"))
	writeFile(t, filepath.Join(root, "c.mkv"))

	plan := &planner.Plan{
		Files: []planner.Entry{
			{OldRelPath: "a.mkv", NewRelPath: "A (2001).mkv"},
			{OldRelPath: "b.mkv", NewRelPath: "B (2002).mkv"}, // source missing
			{OldRelPath: "c.mkv", NewRelPath: "C (2003).mkv"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)

	// The failing entry is reported; the other renames still happen.
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Label, "b.mkv")
	assert.Error(t, errs[0].Err)
	assert.FileExists(t, filepath.Join(root, "A (2001).mkv"))
	assert.FileExists(t, filepath.Join(root, "C (2003).mkv"))
}

func TestApply_FolderErrorDoesNotBlockRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "Some.Show")
	writeFile(t, filepath.Join(root, "Season1", "Show.Name.S01E01.mkv"))

	plan := &planner.Plan{
		Folders: []planner.Entry{
			{OldRelPath: "Gone", NewRelPath: "Season 01"}, // no such folder
			{OldRelPath: "Some.Show", NewRelPath: "Show Name"},
		},
	}

	errs := NewService(zerolog.Nop()).Apply(root, plan)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Label, "Gone")
	assert.DirExists(t, filepath.Join(parent, "Show Name"))
}

func TestItemError_Error(t *testing.T) {
	err := ItemError{Label: "file a.mkv", Err: os.ErrNotExist}
	assert.Contains(t, err.Error(), "file a.mkv")
	assert.Contains(t, err.Error(), os.ErrNotExist.Error())
}
