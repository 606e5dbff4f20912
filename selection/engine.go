// Package selection tracks the subjects a student marks as passed and
// derives which subjects those selections unlock.
//
// An Engine belongs to a single session. It is not safe for concurrent
// mutation; the curriculum.Index it reads from may be shared freely.
package selection

import (
	"slices"

	"github.com/brequin/brequin/plan/curriculum"
)

// Snapshot is the state of an Engine right after a mutation.
type Snapshot struct {
	Selected []string
	Unlocked []string
}

// Listener is called synchronously after every Toggle and Clear.
type Listener func(Snapshot)

type Option func(*Engine)

// SingleSelection limits the engine to one selected subject at a time:
// toggling a new subject replaces the previous selection.
func SingleSelection() Option {
	return func(e *Engine) {
		e.single = true
	}
}

type Engine struct {
	index  *curriculum.Index
	single bool

	selected    []string
	selectedSet map[string]struct{}
	unlocked    []string
	unlockedSet map[string]struct{}

	listeners []Listener
}

func New(index *curriculum.Index, options ...Option) *Engine {
	if index == nil {
		index = curriculum.Build(nil)
	}

	engine := &Engine{
		index:       index,
		selectedSet: make(map[string]struct{}),
		unlockedSet: make(map[string]struct{}),
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

func (e *Engine) Index() *curriculum.Index {
	return e.index
}

// OnChange registers a listener for subsequent mutations.
func (e *Engine) OnChange(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

// Toggle selects name if it is not selected and deselects it otherwise.
// Names missing from the catalog are accepted.
func (e *Engine) Toggle(name string) {
	if _, ok := e.selectedSet[name]; ok {
		e.selected = slices.DeleteFunc(e.selected, func(selected string) bool {
			return selected == name
		})
		delete(e.selectedSet, name)
	} else {
		if e.single {
			e.resetSelected()
		}
		e.selected = append(e.selected, name)
		e.selectedSet[name] = struct{}{}
	}

	e.computeUnlocked()
	e.notify()
}

// Clear empties the selection and therefore the unlocked set.
func (e *Engine) Clear() {
	e.resetSelected()
	e.computeUnlocked()
	e.notify()
}

func (e *Engine) resetSelected() {
	e.selected = nil
	clear(e.selectedSet)
}

// computeUnlocked rebuilds the unlocked set from scratch as the union of
// the unlock lists of every selected subject.
func (e *Engine) computeUnlocked() {
	e.unlocked = nil
	clear(e.unlockedSet)

	for _, name := range e.selected {
		for _, unlocked := range e.index.UnlocksOf(name) {
			if _, seen := e.unlockedSet[unlocked]; seen {
				continue
			}
			e.unlockedSet[unlocked] = struct{}{}
			e.unlocked = append(e.unlocked, unlocked)
		}
	}
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := e.Snapshot()
	for _, listener := range e.listeners {
		listener(snapshot)
	}
}

func (e *Engine) IsSelected(name string) bool {
	_, ok := e.selectedSet[name]
	return ok
}

func (e *Engine) IsUnlocked(name string) bool {
	_, ok := e.unlockedSet[name]
	return ok
}

// IsDimmed reports whether name should be de-emphasised: something is
// selected and name is neither selected nor unlocked.
func (e *Engine) IsDimmed(name string) bool {
	return len(e.selected) > 0 && !e.IsSelected(name) && !e.IsUnlocked(name)
}

func (e *Engine) SelectionCount() int {
	return len(e.selected)
}

func (e *Engine) UnlockedCount() int {
	return len(e.unlocked)
}

// Selected returns the selection in the order subjects were toggled in.
func (e *Engine) Selected() []string {
	return slices.Clone(e.selected)
}

// Unlocked returns the unlocked subjects in discovery order: selection
// order first, then catalog order within each unlock list.
func (e *Engine) Unlocked() []string {
	return slices.Clone(e.unlocked)
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{Selected: e.Selected(), Unlocked: e.Unlocked()}
}
