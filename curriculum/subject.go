package curriculum

import (
	"fmt"
	"strings"
)

const (
	FirstYear = 1
	LastYear  = 4
)

// SubjectType is how a subject is scheduled across the academic year. It
// only affects display.
type SubjectType int

const (
	Annual SubjectType = iota
	Term1
	Term2
)

var subjectTypeNames = map[SubjectType]string{
	Annual: "annual",
	Term1:  "term1",
	Term2:  "term2",
}

var subjectTypeLabels = map[SubjectType]string{
	Annual: "Anual",
	Term1:  "Cuatrimestral 1°",
	Term2:  "Cuatrimestral 2°",
}

func (t SubjectType) String() string {
	if name, ok := subjectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SubjectType(%d)", int(t))
}

// Label is the text shown next to a subject on the study plan.
func (t SubjectType) Label() string {
	return subjectTypeLabels[t]
}

// ParseSubjectType accepts the canonical names ("annual", "term1", "term2")
// as well as the labels used by published study plans ("Anual",
// "Cuatrimestral 1°", "1° Cuatrimestre").
func ParseSubjectType(s string) (SubjectType, error) {
	normalized := strings.ToLower(s)
	normalized = strings.NewReplacer("°", "", "º", "", " ", "", "-", "", "_", "").Replace(normalized)

	switch normalized {
	case "annual", "anual":
		return Annual, nil
	case "term1", "cuatrimestral1", "1cuatrimestre", "1cuatrimestral":
		return Term1, nil
	case "term2", "cuatrimestral2", "2cuatrimestre", "2cuatrimestral":
		return Term2, nil
	}
	return 0, fmt.Errorf("unknown subject type %q", s)
}

func (t SubjectType) MarshalText() ([]byte, error) {
	name, ok := subjectTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown subject type %d", int(t))
	}
	return []byte(name), nil
}

func (t *SubjectType) UnmarshalText(text []byte) error {
	parsed, err := ParseSubjectType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Subject is one entry of the study plan. Prerequisites holds the names of
// the subjects (correlatives) that must be passed first.
type Subject struct {
	Name          string
	Year          int
	Type          SubjectType
	Prerequisites []string
}
