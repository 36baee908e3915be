package placer

import "sync"

// UndoManager is a linear undo history. Idx is the action that Undo reverts;
// committing after an undo drops the redo tail.
type UndoManager struct {
	mu   sync.Mutex
	Idx  int
	Recs []UndoAction
	// Max bounds the history; zero means unbounded.
	Max int
}

func NewUndoManager(limit int) *UndoManager {
	return &UndoManager{Idx: -1, Max: limit}
}

func (um *UndoManager) Commit(a UndoAction, execute bool) {
	if execute && a.Do != nil {
		a.Do()
	}
	um.mu.Lock()
	defer um.mu.Unlock()
	um.Recs = append(um.Recs[:um.Idx+1], a)
	if um.Max > 0 && len(um.Recs) > um.Max {
		um.Recs = um.Recs[len(um.Recs)-um.Max:]
	}
	um.Idx = len(um.Recs) - 1
}

func (um *UndoManager) IsUndoAvail() bool {
	um.mu.Lock()
	defer um.mu.Unlock()
	return um.Idx >= 0
}

func (um *UndoManager) IsRedoAvail() bool {
	um.mu.Lock()
	defer um.mu.Unlock()
	return um.Idx < len(um.Recs)-1
}

// Undo reverts the current action and returns its name, or "" when there is
// nothing to undo.
func (um *UndoManager) Undo() string {
	um.mu.Lock()
	if um.Idx < 0 {
		um.mu.Unlock()
		return ""
	}
	a := um.Recs[um.Idx]
	um.Idx--
	um.mu.Unlock()
	if a.Undo != nil {
		a.Undo()
	}
	return a.Name
}

// Redo re-applies the next action and returns its name, or "".
func (um *UndoManager) Redo() string {
	um.mu.Lock()
	if um.Idx >= len(um.Recs)-1 {
		um.mu.Unlock()
		return ""
	}
	um.Idx++
	a := um.Recs[um.Idx]
	um.mu.Unlock()
	if a.Do != nil {
		a.Do()
	}
	return a.Name
}

// Len is the number of recorded actions, including redoable ones.
func (um *UndoManager) Len() int {
	um.mu.Lock()
	defer um.mu.Unlock()
	return len(um.Recs)
}
