package segment

import "image"

// HistoryDepth is the capacity of each history stack. Once full, the oldest
// snapshot is dropped to make room.
const HistoryDepth = 15

// History holds bounded undo and redo stacks of full-image snapshots.
// Snapshots are deep copies owned exclusively by the History — never aliases
// of the live image — so later in-place mutation of the current image can
// never corrupt a stored state. Invariants: the redo stack is empty
// immediately after Record and after Clear, and neither stack ever exceeds
// HistoryDepth.
type History struct {
	undo []*image.NRGBA
	redo []*image.NRGBA
}

// Record pushes a copy of current onto the undo stack and clears the redo
// stack. It is invoked immediately before a newly applied edit replaces the
// visible image. A nil current is ignored (no edit to remember), but redo is
// still only cleared when something was recorded.
func (h *History) Record(current *image.NRGBA) {
	if h == nil || current == nil {
		return
	}
	h.undo = push(h.undo, CloneNRGBA(current))
	h.redo = nil
}

// Undo moves a copy of current onto the redo stack and returns the most
// recent undo snapshot, or nil when there is nothing to undo.
func (h *History) Undo(current *image.NRGBA) *image.NRGBA {
	if h == nil || len(h.undo) == 0 {
		return nil
	}
	if current != nil {
		h.redo = push(h.redo, CloneNRGBA(current))
	}
	var top *image.NRGBA
	h.undo, top = pop(h.undo)
	return top
}

// Redo is symmetric to Undo: it moves a copy of current onto the undo stack
// and returns the most recent redo snapshot, or nil when there is nothing to
// redo. Neither Undo nor Redo ever clears the opposite stack.
func (h *History) Redo(current *image.NRGBA) *image.NRGBA {
	if h == nil || len(h.redo) == 0 {
		return nil
	}
	if current != nil {
		h.undo = push(h.undo, CloneNRGBA(current))
	}
	var top *image.NRGBA
	h.redo, top = pop(h.redo)
	return top
}

// Clear empties both stacks. Invoked when a new source image is loaded —
// history never spans different images.
func (h *History) Clear() {
	if h == nil {
		return
	}
	h.undo = nil
	h.redo = nil
}

// UndoDepth returns the number of recoverable undo snapshots.
func (h *History) UndoDepth() int {
	if h == nil {
		return 0
	}
	return len(h.undo)
}

// RedoDepth returns the number of recoverable redo snapshots.
func (h *History) RedoDepth() int {
	if h == nil {
		return 0
	}
	return len(h.redo)
}

func push(stack []*image.NRGBA, snap *image.NRGBA) []*image.NRGBA {
	stack = append(stack, snap)
	if len(stack) > HistoryDepth {
		stack = stack[len(stack)-HistoryDepth:]
	}
	return stack
}

func pop(stack []*image.NRGBA) ([]*image.NRGBA, *image.NRGBA) {
	top := stack[len(stack)-1]
	return stack[:len(stack)-1], top
}
