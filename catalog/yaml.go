// Package catalog loads study plans from YAML files and from published
// plan pages.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brequin/brequin/plan/curriculum"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// InvalidSubjectError describes a malformed catalog entry. Position is the
// zero-based index of the entry in the catalog.
type InvalidSubjectError struct {
	Position int
	Name     string
	Reason   string
}

func (e *InvalidSubjectError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: subject #%d: %v", ErrInvalidCatalog, e.Position, e.Reason)
	}
	return fmt.Sprintf("%v: subject #%d (%v): %v", ErrInvalidCatalog, e.Position, e.Name, e.Reason)
}

func (e *InvalidSubjectError) Unwrap() error {
	return ErrInvalidCatalog
}

type document struct {
	Subjects []subjectEntry `yaml:"subjects"`
}

type subjectEntry struct {
	Name         string                 `yaml:"name"`
	Year         int                    `yaml:"year"`
	Type         curriculum.SubjectType `yaml:"type"`
	Correlatives []string               `yaml:"correlatives"`
}

// Read decodes a YAML catalog:
//
//	subjects:
//	  - name: Diseño II
//	    year: 2
//	    type: anual
//	    correlatives: [Diseño I, Morfología I]
func Read(r io.Reader) ([]curriculum.Subject, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []curriculum.Subject{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	subjects := make([]curriculum.Subject, 0, len(doc.Subjects))
	for _, entry := range doc.Subjects {
		subjects = append(subjects, curriculum.Subject{
			Name:          strings.TrimSpace(entry.Name),
			Year:          entry.Year,
			Type:          entry.Type,
			Prerequisites: trimAll(entry.Correlatives),
		})
	}

	if err := Validate(subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func ReadFile(path string) ([]curriculum.Subject, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	subjects, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return subjects, nil
}

// Validate rejects entries without a name, with a name already used, with a
// year outside the plan or with a blank correlative. Correlatives naming
// subjects outside the catalog are accepted; curriculum.Build reports them.
func Validate(subjects []curriculum.Subject) error {
	seen := make(map[string]bool, len(subjects))
	for position, subject := range subjects {
		invalid := func(reason string) error {
			return &InvalidSubjectError{Position: position, Name: subject.Name, Reason: reason}
		}

		if subject.Name == "" {
			return invalid("missing name")
		}
		if seen[subject.Name] {
			return invalid("duplicate name")
		}
		seen[subject.Name] = true

		if subject.Year < curriculum.FirstYear || subject.Year > curriculum.LastYear {
			return invalid(fmt.Sprintf("year %d outside %d-%d", subject.Year, curriculum.FirstYear, curriculum.LastYear))
		}
		for _, prerequisite := range subject.Prerequisites {
			if prerequisite == "" {
				return invalid("empty correlative")
			}
		}
	}
	return nil
}

func trimAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	trimmed := make([]string, len(names))
	for i, name := range names {
		trimmed[i] = strings.TrimSpace(name)
	}
	return trimmed
}
