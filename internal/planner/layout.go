package planner

import "os"

// Layout classifies the structure of a scan root.
type Layout int

const (
	// LayoutSingleMovie is a directory with exactly one file and no
	// subdirectories.
	LayoutSingleMovie Layout = iota
	// LayoutShow is any other directory shape.
	LayoutShow
)

func (l Layout) String() string {
	switch l {
	case LayoutSingleMovie:
		return "single-movie"
	case LayoutShow:
		return "show"
	default:
		return "unknown"
	}
}

// ClassifyLayout inspects the immediate children of root. The heuristic is
// purely structural: file contents are never examined.
func ClassifyLayout(root string) (Layout, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return LayoutShow, err
	}

	subdirs := 0
	files := 0
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs++
		} else {
			files++
		}
	}

	if subdirs == 0 && files == 1 {
		return LayoutSingleMovie, nil
	}
	return LayoutShow, nil
}
