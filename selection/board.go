package selection

import (
	"slices"

	"github.com/brequin/brequin/plan/curriculum"
)

// SubjectView is a subject as the presentation layer draws it.
type SubjectView struct {
	Name              string
	Type              curriculum.SubjectType
	Label             string
	PrerequisiteCount int
	Selected          bool
	Unlocked          bool
	Dimmed            bool
}

type YearColumn struct {
	Year     int
	Subjects []SubjectView
}

// Board is a read-only projection of the engine for display.
type Board struct {
	Years          []YearColumn
	SelectionCount int
	Selected       []string
	Unlocked       []string
}

// Board projects the current state. Years 1 through 4 are always present,
// even when empty; any other year found in the catalog is added in order.
func (e *Engine) Board() Board {
	board := Board{
		SelectionCount: e.SelectionCount(),
		Selected:       e.Selected(),
		Unlocked:       e.Unlocked(),
	}

	for _, year := range boardYears(e.index) {
		column := YearColumn{Year: year, Subjects: []SubjectView{}}
		for _, subject := range e.index.ByYear(year) {
			column.Subjects = append(column.Subjects, SubjectView{
				Name:              subject.Name,
				Type:              subject.Type,
				Label:             subject.Type.Label(),
				PrerequisiteCount: len(subject.Prerequisites),
				Selected:          e.IsSelected(subject.Name),
				Unlocked:          e.IsUnlocked(subject.Name),
				Dimmed:            e.IsDimmed(subject.Name),
			})
		}
		board.Years = append(board.Years, column)
	}

	return board
}

func boardYears(index *curriculum.Index) []int {
	var years []int
	for year := curriculum.FirstYear; year <= curriculum.LastYear; year++ {
		years = append(years, year)
	}
	for _, year := range index.Years() {
		if !slices.Contains(years, year) {
			years = append(years, year)
		}
	}
	slices.Sort(years)
	return years
}
