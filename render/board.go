// Package render draws a selection.Board for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brequin/brequin/plan/curriculum"
	"github.com/brequin/brequin/plan/selection"
)

const columnWidth = 32

var (
	colorAnnual   = lipgloss.Color("#2563EB")
	colorTerm1    = lipgloss.Color("#8B5CF6")
	colorTerm2    = lipgloss.Color("#059669")
	colorSelected = lipgloss.Color("#FCD34D")
	colorUnlocked = lipgloss.Color("#6EE7B7")
	colorMuted    = lipgloss.Color("#475569")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	yearStyle   = lipgloss.NewStyle().Bold(true).Width(columnWidth).MarginBottom(1)
	detailStyle = lipgloss.NewStyle().Foreground(colorMuted)
	columnStyle = lipgloss.NewStyle().Width(columnWidth).MarginRight(2)

	subjectStyle = lipgloss.NewStyle().
			Width(columnWidth-2).
			PaddingLeft(1).
			MarginBottom(1).
			Border(lipgloss.ThickBorder(), false, false, false, true)

	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	unlockedStyle = lipgloss.NewStyle().Foreground(colorUnlocked).Bold(true)
)

var yearLabels = map[int]string{
	1: "1° Año",
	2: "2° Año",
	3: "3° Año",
	4: "4° Año",
}

func yearLabel(year int) string {
	if label, ok := yearLabels[year]; ok {
		return label
	}
	return fmt.Sprintf("%d° Año", year)
}

func typeColor(subjectType curriculum.SubjectType) lipgloss.Color {
	switch subjectType {
	case curriculum.Term1:
		return colorTerm1
	case curriculum.Term2:
		return colorTerm2
	default:
		return colorAnnual
	}
}

// Markers make the state readable without colour.
func marker(subject selection.SubjectView) string {
	switch {
	case subject.Selected && subject.Unlocked:
		return "★ "
	case subject.Selected:
		return "● "
	case subject.Unlocked:
		return "✓ "
	default:
		return ""
	}
}

func subjectCard(subject selection.SubjectView) string {
	name := marker(subject) + subject.Name
	switch {
	case subject.Selected:
		name = selectedStyle.Render(name)
	case subject.Unlocked:
		name = unlockedStyle.Render(name)
	}

	lines := []string{
		name,
		subject.Label,
		detailStyle.Render(fmt.Sprintf("Correlativas requeridas: %d", subject.PrerequisiteCount)),
	}

	style := subjectStyle.BorderForeground(typeColor(subject.Type))
	if subject.Dimmed {
		style = style.Faint(true)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func column(year selection.YearColumn) string {
	cards := []string{yearStyle.Render(yearLabel(year.Year))}
	for _, subject := range year.Subjects {
		cards = append(cards, subjectCard(subject))
	}
	return columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func legend() string {
	entries := []string{
		lipgloss.NewStyle().Foreground(colorAnnual).Render("▌Anual"),
		lipgloss.NewStyle().Foreground(colorTerm1).Render("▌Cuatrimestral 1°"),
		lipgloss.NewStyle().Foreground(colorTerm2).Render("▌Cuatrimestral 2°"),
		selectedStyle.Render("● Seleccionada"),
		unlockedStyle.Render("✓ Desbloqueada"),
	}
	return strings.Join(entries, "  ")
}

func summary(board selection.Board) string {
	if board.SelectionCount == 0 {
		return detailStyle.Render("Seleccioná una materia para ver qué materias se desbloquean una vez aprobada.")
	}

	label := "Materia seleccionada"
	if board.SelectionCount > 1 {
		label = fmt.Sprintf("Materias seleccionadas (%d)", board.SelectionCount)
	}

	lines := []string{
		titleStyle.Render(label),
		strings.Join(board.Selected, ", "),
		fmt.Sprintf("Desbloquea: %v materia(s)", titleStyle.Render(fmt.Sprint(len(board.Unlocked)))),
	}
	if len(board.Unlocked) > 0 {
		lines = append(lines, unlockedStyle.Render(strings.Join(board.Unlocked, ", ")))
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// Board renders the study plan with one column per year, followed by a
// summary of the selection.
func Board(title string, board selection.Board) string {
	columns := make([]string, 0, len(board.Years))
	for _, year := range board.Years {
		columns = append(columns, column(year))
	}

	sections := []string{
		titleStyle.Render(title),
		legend(),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		summary(board),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
