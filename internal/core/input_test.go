package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotate)

	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionRotate) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame

	f.Set(ActionSoftDrop)
	if !f.Has(ActionSoftDrop) {
		t.Error("Set on a zero-value frame should allocate and record the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	if !clone.Has(ActionPause) {
		t.Error("Clone should carry the original's actions")
	}

	clone.Set(ActionQuit)
	if f.Has(ActionQuit) {
		t.Error("Mutating the clone must not affect the original")
	}
}

func TestActionStrings(t *testing.T) {
	actions := []Action{
		ActionNone, ActionLeft, ActionRight, ActionRotate, ActionSoftDrop,
		ActionConfirm, ActionBack, ActionRestart, ActionQuit, ActionPause,
	}
	seen := make(map[string]bool)
	for _, a := range actions {
		s := a.String()
		if s == "" || s == "Unknown" {
			t.Errorf("Action %d has no name", a)
		}
		if seen[s] {
			t.Errorf("Duplicate action name %q", s)
		}
		seen[s] = true
	}
}
