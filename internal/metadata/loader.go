package metadata

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"
)

// Loader reads datasets out of the files an Index points at. Every call
// rereads and reparses the file so pages always reflect what is on disk.
type Loader struct {
	index          *Index
	schema         *Schema
	defaultDataset string
}

// NewLoader creates a loader over idx. defaultDataset is used when Load is
// called with an empty dataset name.
func NewLoader(idx *Index, defaultDataset string) (*Loader, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}
	if defaultDataset == "" {
		defaultDataset = "default"
	}
	return &Loader{
		index:          idx,
		schema:         schema,
		defaultDataset: defaultDataset,
	}, nil
}

// Index returns the index the loader reads from
func (l *Loader) Index() *Index {
	return l.index
}

// DefaultDataset returns the dataset name used when none is requested
func (l *Loader) DefaultDataset() string {
	return l.defaultDataset
}

// Load returns the named dataset for team. Unknown teams and datasets yield
// errors wrapping ErrNotFound; unreadable or invalid documents yield *DataError.
func (l *Loader) Load(team, dataset string) (*Dataset, error) {
	if dataset == "" {
		dataset = l.defaultDataset
	}

	path, doc, err := l.document(team)
	if err != nil {
		return nil, err
	}

	raw, ok := doc[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %q for team %q", ErrDatasetNotFound, dataset, team)
	}

	fields, err := l.schema.Check(raw)
	if err != nil {
		return nil, &DataError{Team: team, Dataset: dataset, Path: path, Err: err}
	}
	if len(fields) > 0 {
		return nil, &DataError{Team: team, Dataset: dataset, Path: path, Fields: fields}
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, &DataError{Team: team, Dataset: dataset, Path: path, Err: err}
	}
	return &ds, nil
}

// Datasets lists the dataset names present in team's metadata file, sorted
// with the default dataset first.
func (l *Loader) Datasets(team string) ([]string, error) {
	_, doc, err := l.document(team)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == l.defaultDataset) != (names[j] == l.defaultDataset) {
			return names[i] == l.defaultDataset
		}
		return names[i] < names[j]
	})
	return names, nil
}

func (l *Loader) document(team string) (string, map[string]json.RawMessage, error) {
	path, ok := l.index.Lookup(team)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrTeamNotFound, team)
	}

	data, err := afero.ReadFile(l.index.Fs(), path)
	if err != nil {
		return path, nil, &DataError{Team: team, Path: path, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return path, nil, &DataError{Team: team, Path: path, Err: err}
	}
	return path, doc, nil
}
