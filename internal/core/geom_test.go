package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(5, 5), V(10, 10)),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(15, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(0, -15), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(V(0, 0), V(10, 10)),
			b:        NewBox(V(10, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(V(0, 0), V(40, 40)),
			b:        NewBox(V(3, -3), V(5, 5)),
			expected: true,
		},
		{
			name:     "thin gutter spanning the arena",
			a:        NewBox(V(0, 290), V(800, 20)),
			b:        NewBox(V(120, 282), V(10, 10)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(V(10, -4), V(50, 10))

	if got := b.Min(); got != V(-15, -9) {
		t.Errorf("Min() = %v, expected (-15, -9)", got)
	}
	if got := b.Max(); got != V(35, 1) {
		t.Errorf("Max() = %v, expected (35, 1)", got)
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(1, -2).Add(V(3, 4)).Scale(5)
	if v != V(20, 10) {
		t.Errorf("(1,-2)+(3,4) scaled by 5 = %v, expected (20, 10)", v)
	}
	if got := V(7, 3).Sub(V(2, 5)); got != V(5, -2) {
		t.Errorf("Sub() = %v, expected (5, -2)", got)
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
}
