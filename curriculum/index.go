// Package curriculum indexes a study plan: subjects grouped by year and the
// inverse of the correlative relation, i.e. which subjects each subject
// helps unlock.
package curriculum

import (
	"fmt"
	"slices"
)

// UnknownSubjectReference is reported when a subject lists a correlative
// that is not part of the catalog. The reference is kept in the index.
type UnknownSubjectReference struct {
	Subject      string
	Prerequisite string
}

func (r UnknownSubjectReference) Error() string {
	return fmt.Sprintf("subject %q lists unknown correlative %q", r.Subject, r.Prerequisite)
}

// DuplicateSubject is reported when two catalog entries share a name.
type DuplicateSubject struct {
	Name string
}

func (d DuplicateSubject) Error() string {
	return fmt.Sprintf("subject %q appears more than once in the catalog", d.Name)
}

// Index is built once from a catalog and never mutated afterwards, so it
// may be shared by any number of readers.
type Index struct {
	subjects  []Subject
	byName    map[string]int
	byYear    map[int][]Subject
	unlocksOf map[string][]string
	warnings  []error
}

// Build indexes catalog. It never fails: unknown correlatives and duplicate
// names are recorded as warnings and otherwise tolerated.
func Build(catalog []Subject) *Index {
	index := &Index{
		subjects:  make([]Subject, 0, len(catalog)),
		byName:    make(map[string]int, len(catalog)),
		byYear:    make(map[int][]Subject),
		unlocksOf: make(map[string][]string),
	}

	for _, subject := range catalog {
		subject.Prerequisites = slices.Clone(subject.Prerequisites)

		if _, exists := index.byName[subject.Name]; exists {
			index.warnings = append(index.warnings, DuplicateSubject{Name: subject.Name})
		} else {
			index.byName[subject.Name] = len(index.subjects)
		}

		index.subjects = append(index.subjects, subject)
		index.byYear[subject.Year] = append(index.byYear[subject.Year], subject)
	}

	for _, subject := range index.subjects {
		for _, prerequisite := range subject.Prerequisites {
			if _, known := index.byName[prerequisite]; !known {
				index.warnings = append(index.warnings, UnknownSubjectReference{Subject: subject.Name, Prerequisite: prerequisite})
			}

			unlocks := index.unlocksOf[prerequisite]
			// A correlative listed twice by the same subject unlocks it once
			if len(unlocks) > 0 && unlocks[len(unlocks)-1] == subject.Name {
				continue
			}
			index.unlocksOf[prerequisite] = append(unlocks, subject.Name)
		}
	}

	return index
}

func (i *Index) Len() int {
	return len(i.subjects)
}

// Subjects returns the catalog in its original order.
func (i *Index) Subjects() []Subject {
	subjects := make([]Subject, len(i.subjects))
	for n, subject := range i.subjects {
		subject.Prerequisites = slices.Clone(subject.Prerequisites)
		subjects[n] = subject
	}
	return subjects
}

// Subject looks up the first catalog entry named name.
func (i *Index) Subject(name string) (Subject, bool) {
	n, ok := i.byName[name]
	if !ok {
		return Subject{}, false
	}
	subject := i.subjects[n]
	subject.Prerequisites = slices.Clone(subject.Prerequisites)
	return subject, true
}

// Years returns the years that have at least one subject, ascending.
func (i *Index) Years() []int {
	years := make([]int, 0, len(i.byYear))
	for year := range i.byYear {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// ByYear returns the subjects of year in catalog order.
func (i *Index) ByYear(year int) []Subject {
	subjects := make([]Subject, len(i.byYear[year]))
	for n, subject := range i.byYear[year] {
		subject.Prerequisites = slices.Clone(subject.Prerequisites)
		subjects[n] = subject
	}
	return subjects
}

// UnlocksOf returns, in catalog order, the subjects that list name as a
// correlative. Names that unlock nothing, known or not, yield an empty
// slice.
func (i *Index) UnlocksOf(name string) []string {
	return slices.Clone(i.unlocksOf[name])
}

// Warnings returns the problems found while building the index, in the
// order they were found. Each is an UnknownSubjectReference or a
// DuplicateSubject.
func (i *Index) Warnings() []error {
	return slices.Clone(i.warnings)
}
