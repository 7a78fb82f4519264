// Package metadata locates per-team metadata files and decodes the datasets they hold.
package metadata

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
)

// Index maps team names to metadata file paths. It is never mutated after
// BuildIndex returns.
type Index struct {
	fs       afero.Fs
	root     string
	filename string
	teams    map[string]string
}

// BuildIndex walks root and records every file called filename, keyed by the
// name of the directory that contains it. When two directories share a name
// the one visited last (lexical walk order) wins.
func BuildIndex(fs afero.Fs, root, filename string) (*Index, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("plot directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("plot directory %s is not a directory", root)
	}

	idx := &Index{
		fs:       fs,
		root:     root,
		filename: filename,
		teams:    make(map[string]string),
	}

	err = afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Name() != filename {
			return nil
		}

		team := TeamName(p)
		if prev, ok := idx.teams[team]; ok {
			logging.Warn("Duplicate team directory, keeping later file",
				logging.Team(team),
				logging.File(p),
				"replaced", prev)
		}
		idx.teams[team] = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	logging.Info("Metadata index built",
		"root", root,
		logging.Count("team", len(idx.teams)))

	return idx, nil
}

// TeamName derives the team identifier from a metadata file path: the last
// component of its parent directory. Windows separators are accepted too.
func TeamName(metadataPath string) string {
	dir := path.Dir(strings.ReplaceAll(metadataPath, `\`, "/"))
	if dir == "." || dir == "/" {
		return ""
	}
	return path.Base(dir)
}

// Lookup returns the metadata file path for team
func (i *Index) Lookup(team string) (string, bool) {
	path, ok := i.teams[team]
	return path, ok
}

// Teams returns every indexed team name, sorted
func (i *Index) Teams() []string {
	teams := make([]string, 0, len(i.teams))
	for t := range i.teams {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}

// Len returns the number of indexed teams
func (i *Index) Len() int {
	return len(i.teams)
}

// Root returns the scanned directory
func (i *Index) Root() string {
	return i.root
}

// Fs returns the filesystem the index was built from
func (i *Index) Fs() afero.Fs {
	return i.fs
}
