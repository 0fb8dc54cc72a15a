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
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(40, 40, 40, 40),
			b:        NewRect(50, 50, 20, 20),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "overlap on one axis only",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 20, 10, 10),
			expected: false,
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

func TestRectInset(t *testing.T) {
	r := NewRect(100, 200, 120, 120).Inset(20, 20, 20, 20)
	want := NewRect(120, 220, 80, 80)
	if r != want {
		t.Errorf("Inset() = %+v, expected %+v", r, want)
	}

	asym := NewRect(0, 0, 40, 30).Inset(5, 10, 0, 15)
	if asym != NewRect(5, 0, 25, 15) {
		t.Errorf("Inset() asymmetric = %+v", asym)
	}

	if !NewRect(0, 0, 20, 20).Inset(10, 10, 0, 0).Empty() {
		t.Error("Inset() consuming the full width should be empty")
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(10, 10, 5, 5).Translate(-3, 7)
	if r != NewRect(7, 17, 5, 5) {
		t.Errorf("Translate() = %+v", r)
	}
	if NewRect(1, 2, 3, 4).Translate(0, 0) != NewRect(1, 2, 3, 4) {
		t.Error("Translate(0, 0) should be identity")
	}
}

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"inside", NewRect(10, 10, 20, 20), true},
		{"flush with far edges", NewRect(680, 480, 120, 120), true},
		{"past left", NewRect(-1, 0, 10, 10), false},
		{"past right", NewRect(681, 0, 120, 120), false},
		{"past bottom", NewRect(0, 481, 120, 120), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(800, 600); got != tc.expected {
				t.Errorf("Within() = %v, expected %v", got, tc.expected)
			}
		})
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{20, 10, 2},
		{25, 10, 3},
		{1, 20, 1},
		{0, 10, 0},
	}

	for _, tc := range tests {
		if got := CeilDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
