package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the root of every "no such page" condition. Handlers map
// anything wrapping it to 404.
var ErrNotFound = errors.New("not found")

var (
	ErrTeamNotFound    = fmt.Errorf("team %w", ErrNotFound)
	ErrDatasetNotFound = fmt.Errorf("dataset %w", ErrNotFound)
)

// FieldError describes one dataset field that failed validation
type FieldError struct {
	Field       string
	Description string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// DataError reports a metadata document that exists but cannot be used
type DataError struct {
	Team    string
	Dataset string
	Path    string
	Fields  []FieldError
	Err     error
}

func (e *DataError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid metadata for team %q dataset %q (%s)", e.Team, e.Dataset, e.Path)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s", f)
	}
	return b.String()
}

func (e *DataError) Unwrap() error {
	return e.Err
}
