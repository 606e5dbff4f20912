package db

import (
	"fmt"
	"slices"

	"github.com/brequin/brequin/plan/curriculum"
)

type Subject struct {
	Name     string
	Year     int
	Type     string
	Position int
}

type Correlative struct {
	SubjectName      string
	PrerequisiteName string
	Position         int
}

// FromCatalog splits a catalog into subject and correlative rows. Positions
// record catalog order and correlative declaration order.
func FromCatalog(catalog []curriculum.Subject) ([]Subject, []Correlative) {
	subjects := make([]Subject, 0, len(catalog))
	var correlatives []Correlative

	for position, subject := range catalog {
		subjects = append(subjects, Subject{
			Name:     subject.Name,
			Year:     subject.Year,
			Type:     subject.Type.String(),
			Position: position,
		})

		for prerequisitePosition, prerequisite := range subject.Prerequisites {
			correlatives = append(correlatives, Correlative{
				SubjectName:      subject.Name,
				PrerequisiteName: prerequisite,
				Position:         prerequisitePosition,
			})
		}
	}

	return subjects, correlatives
}

// ToCatalog reassembles rows into a catalog. Subjects keep the order they
// are given in; each subject's correlatives are ordered by Position.
// Correlatives of subjects that are not present are dropped.
func ToCatalog(subjects []Subject, correlatives []Correlative) ([]curriculum.Subject, error) {
	catalog := make([]curriculum.Subject, 0, len(subjects))
	positions := make(map[string]int, len(subjects))

	for _, subject := range subjects {
		subjectType, err := curriculum.ParseSubjectType(subject.Type)
		if err != nil {
			return nil, fmt.Errorf("subject %v: %w", subject.Name, err)
		}

		positions[subject.Name] = len(catalog)
		catalog = append(catalog, curriculum.Subject{
			Name: subject.Name,
			Year: subject.Year,
			Type: subjectType,
		})
	}

	sorted := make(map[string][]Correlative)
	for _, correlative := range correlatives {
		sorted[correlative.SubjectName] = append(sorted[correlative.SubjectName], correlative)
	}

	for name, subjectCorrelatives := range sorted {
		position, ok := positions[name]
		if !ok {
			continue
		}

		slices.SortStableFunc(subjectCorrelatives, func(a, b Correlative) int {
			return a.Position - b.Position
		})
		for _, correlative := range subjectCorrelatives {
			catalog[position].Prerequisites = append(catalog[position].Prerequisites, correlative.PrerequisiteName)
		}
	}

	return catalog, nil
}
