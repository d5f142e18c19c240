// Package core resolves the show directory a command operates on.
package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ShowDirName is the marker directory holding the show database.
const ShowDirName = ".stagemix"

// DBFileName is the show database file inside ShowDirName.
const DBFileName = "show.tmix"

// Show represents a stagemix show directory.
type Show struct {
	Root   string
	DBPath string
}

// DiscoverShow walks up from startDir to find a .stagemix directory.
func DiscoverShow(startDir string) (Show, error) {
	current := startDir
	if current == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Show{}, err
		}
		current = cwd
	}
	current, err := filepath.Abs(current)
	if err != nil {
		return Show{}, err
	}

	for {
		showDir := filepath.Join(current, ShowDirName)
		info, err := os.Stat(showDir)
		if err == nil && info.IsDir() {
			dbPath := filepath.Join(showDir, DBFileName)
			if _, err := os.Stat(dbPath); err != nil {
				return Show{}, fmt.Errorf("show database not found. Run 'stagemix init' first")
			}
			return Show{Root: current, DBPath: dbPath}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Show{}, fmt.Errorf("no show here. Run 'stagemix init' first")
		}
		current = parent
	}
}

// ShowFromDBPath builds a Show from an explicit database file path, creating
// the parent directory if needed.
func ShowFromDBPath(dbPath string) (Show, error) {
	dbPath, err := filepath.Abs(dbPath)
	if err != nil {
		return Show{}, err
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Show{}, err
	}
	return Show{Root: dir, DBPath: dbPath}, nil
}

// InitShow creates the .stagemix directory at root. The database file itself
// is created when first opened. Reports whether a show already existed.
func InitShow(root string) (Show, bool, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return Show{}, false, err
	}
	showDir := filepath.Join(root, ShowDirName)
	dbPath := filepath.Join(showDir, DBFileName)

	if _, err := os.Stat(dbPath); err == nil {
		return Show{Root: root, DBPath: dbPath}, true, nil
	}
	if err := os.MkdirAll(showDir, 0o755); err != nil {
		return Show{}, false, err
	}
	return Show{Root: root, DBPath: dbPath}, false, nil
}
