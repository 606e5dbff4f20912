package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brequin/brequin/plan/curriculum"
)

var storedCatalog = []curriculum.Subject{
	{Name: "Morfología I", Year: 1, Type: curriculum.Annual},
	{Name: "Tipografía I", Year: 1, Type: curriculum.Term1},
	{Name: "Diseño II", Year: 2, Type: curriculum.Annual, Prerequisites: []string{"Tipografía I", "Morfología I", "Historia"}},
	{Name: "Tipografía II", Year: 2, Type: curriculum.Term2, Prerequisites: []string{"Tipografía I"}},
}

func TestFromCatalog(t *testing.T) {
	subjects, correlatives := FromCatalog(storedCatalog)

	assert.Equal(t, []Subject{
		{Name: "Morfología I", Year: 1, Type: "annual", Position: 0},
		{Name: "Tipografía I", Year: 1, Type: "term1", Position: 1},
		{Name: "Diseño II", Year: 2, Type: "annual", Position: 2},
		{Name: "Tipografía II", Year: 2, Type: "term2", Position: 3},
	}, subjects)

	assert.Equal(t, []Correlative{
		{SubjectName: "Diseño II", PrerequisiteName: "Tipografía I", Position: 0},
		{SubjectName: "Diseño II", PrerequisiteName: "Morfología I", Position: 1},
		{SubjectName: "Diseño II", PrerequisiteName: "Historia", Position: 2},
		{SubjectName: "Tipografía II", PrerequisiteName: "Tipografía I", Position: 0},
	}, correlatives)
}

func TestToCatalogRestoresDeclarationOrder(t *testing.T) {
	subjects, correlatives := FromCatalog(storedCatalog)

	// Rows come back sorted by subject name, not by catalog order
	shuffled := []Correlative{correlatives[3], correlatives[2], correlatives[0], correlatives[1]}

	catalog, err := ToCatalog(subjects, shuffled)
	require.NoError(t, err)
	assert.Equal(t, storedCatalog, catalog)
}

func TestToCatalogDropsCorrelativesOfMissingSubjects(t *testing.T) {
	catalog, err := ToCatalog(
		[]Subject{{Name: "A", Year: 1, Type: "annual"}},
		[]Correlative{{SubjectName: "B", PrerequisiteName: "A"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []curriculum.Subject{{Name: "A", Year: 1, Type: curriculum.Annual}}, catalog)
}

func TestToCatalogRejectsUnknownTypes(t *testing.T) {
	_, err := ToCatalog([]Subject{{Name: "A", Year: 1, Type: "bimestral"}}, nil)
	assert.ErrorContains(t, err, "subject A")
}
