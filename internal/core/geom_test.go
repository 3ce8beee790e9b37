package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(100, 50, 40, 20)

	tests := []struct {
		name     string
		p        Vector2
		expected bool
	}{
		{"center", Vec(120, 60), true},
		{"top-left inclusive", Vec(100, 50), true},
		{"right edge exclusive", Vec(140, 60), false},
		{"bottom edge exclusive", Vec(120, 70), false},
		{"just inside bottom-right", Vec(139.999, 69.999), true},
		{"left of rect", Vec(99.5, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.p); result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectFMetrics(t *testing.T) {
	r := NewRectF(10, 20, 30, 8)

	if r.Right() != 40 || r.Bottom() != 28 {
		t.Errorf("edges = (%v, %v), expected (40, 28)", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != Vec(25, 24) {
		t.Errorf("Center() = %v, expected (25, 24)", c)
	}
	if r.HalfW() != 15 || r.HalfH() != 4 {
		t.Errorf("half extents = (%v, %v), expected (15, 4)", r.HalfW(), r.HalfH())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
