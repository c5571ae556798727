package sim

import "testing"

func TestNewHeadState(t *testing.T) {
	head := NewHeadState(4000)

	if head.Position != 4000 {
		t.Errorf("Position: got %d, want 4000", head.Position)
	}
	if head.Direction != Up {
		t.Errorf("Direction: got %v, want up", head.Direction)
	}
	if head.EffectiveSeeks != 0 {
		t.Errorf("EffectiveSeeks: got %d, want 0", head.EffectiveSeeks)
	}
}

func TestDirection_Opposite(t *testing.T) {
	if Up.Opposite() != Down {
		t.Error("Up.Opposite() != Down")
	}
	if Down.Opposite() != Up {
		t.Error("Down.Opposite() != Up")
	}
	if Up.Opposite().Opposite() != Up {
		t.Error("double Opposite did not restore direction")
	}
}

func TestDirection_String(t *testing.T) {
	if Up.String() != "up" {
		t.Errorf("Up.String() = %q", Up.String())
	}
	if Down.String() != "down" {
		t.Errorf("Down.String() = %q", Down.String())
	}
}
