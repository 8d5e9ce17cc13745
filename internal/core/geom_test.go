package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges horizontally",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertically",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "one unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "zero height never collides",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 0),
			expected: false,
		},
		{
			name:     "negative height never collides",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 15, 5, -10),
			expected: false,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-30, -5, 10, 10),
			b:        NewRect(-21, 4, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}

	moved := r.Translate(-7, 3)
	if moved.X != -2 || moved.Y != 13 || moved.W != 20 || moved.H != 15 {
		t.Errorf("Translate(-7, 3) = %+v", moved)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy       int
		w, h         int
		wantX, wantY int
	}{
		{"even size", 75, 300, 34, 24, 58, 288},
		{"odd size", 10, 10, 5, 3, 8, 9},
		{"negative center", -4, -4, 4, 4, -6, -6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.cx, tc.cy, tc.w, tc.h)
			if r.X != tc.wantX || r.Y != tc.wantY {
				t.Errorf("CenteredRect origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.wantX, tc.wantY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
