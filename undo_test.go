package placer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func counterAction(name string, v *int, delta int) UndoAction {
	return NewUndoAction(name, func() { *v += delta }, func() { *v -= delta })
}

func TestUndoManager_UndoRedo(t *testing.T) {
	um := NewUndoManager(0)
	v := 0
	assert.False(t, um.IsUndoAvail())
	assert.Equal(t, "", um.Undo())

	um.Commit(counterAction("one", &v, 1), true)
	um.Commit(counterAction("ten", &v, 10), true)
	assert.Equal(t, 11, v)

	assert.Equal(t, "ten", um.Undo())
	assert.Equal(t, 1, v)
	assert.True(t, um.IsRedoAvail())
	assert.Equal(t, "ten", um.Redo())
	assert.Equal(t, 11, v)
	assert.False(t, um.IsRedoAvail())
	assert.Equal(t, "", um.Redo())
}

func TestUndoManager_CommitWithoutExecute(t *testing.T) {
	um := NewUndoManager(0)
	v := 5
	um.Commit(counterAction("already applied", &v, 5), false)
	assert.Equal(t, 5, v)
	um.Undo()
	assert.Equal(t, 0, v)
	um.Redo()
	assert.Equal(t, 5, v)
}

func TestUndoManager_CommitDropsRedoTail(t *testing.T) {
	um := NewUndoManager(0)
	v := 0
	um.Commit(counterAction("a", &v, 1), true)
	um.Commit(counterAction("b", &v, 2), true)
	um.Undo()
	um.Commit(counterAction("c", &v, 4), true)
	assert.Equal(t, 2, um.Len())
	assert.False(t, um.IsRedoAvail())
	assert.Equal(t, 5, v)
	assert.Equal(t, "c", um.Undo())
	assert.Equal(t, "a", um.Undo())
	assert.Equal(t, 0, v)
}

func TestUndoManager_Limit(t *testing.T) {
	um := NewUndoManager(2)
	v := 0
	for i := 0; i < 5; i++ {
		um.Commit(counterAction("step", &v, 1), true)
	}
	assert.Equal(t, 2, um.Len())
	um.Undo()
	um.Undo()
	assert.False(t, um.IsUndoAvail())
	assert.Equal(t, 3, v)
}
