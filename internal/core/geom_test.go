package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestCoord(t *testing.T) {
	c := C(2, 3)

	if c.String() != "(2,3)" {
		t.Errorf("String() = %q, expected (2,3)", c.String())
	}
	if got := c.Add(1, -1); got != C(3, 2) {
		t.Errorf("Add(1, -1) = %v, expected (3,2)", got)
	}

	tests := []struct {
		c    Coord
		want bool
	}{
		{C(0, 0), true},
		{C(4, 4), true},
		{C(5, 0), false},
		{C(0, -1), false},
	}
	for _, tc := range tests {
		if got := tc.c.In(5, 5); got != tc.want {
			t.Errorf("%v.In(5, 5) = %v, expected %v", tc.c, got, tc.want)
		}
	}
}

func TestActionColorIndex(t *testing.T) {
	for i := range MaxPaletteActions {
		a := ColorAction(i)
		got, ok := a.ColorIndex()
		if !ok || got != i {
			t.Errorf("ColorAction(%d).ColorIndex() = %d, %v", i, got, ok)
		}
	}

	if ColorAction(MaxPaletteActions) != ActionNone {
		t.Error("ColorAction past the last slot should be ActionNone")
	}
	if _, ok := ActionConfirm.ColorIndex(); ok {
		t.Error("ActionConfirm is not a color action")
	}
	if ActionColor3.String() != "Color3" {
		t.Errorf("ActionColor3.String() = %q", ActionColor3.String())
	}
}

func TestInputFramePickedColor(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.PickedColor(); ok {
		t.Error("empty frame should not pick a color")
	}

	f.Set(ActionColor4)
	f.Set(ActionColor2)
	if i, ok := f.PickedColor(); !ok || i != 1 {
		t.Errorf("PickedColor() = %d, %v, expected 1, true", i, ok)
	}

	f.Clear()
	if f.Has(ActionColor2) {
		t.Error("Clear should drop all actions")
	}
}
