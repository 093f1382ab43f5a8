package core

import "testing"

func TestRectContainsStrict(t *testing.T) {
	r := NewRect(50, 100, 10, 100)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", Vec2{55, 150}, true},
		{"left edge", Vec2{50, 150}, false},
		{"right edge", Vec2{60, 150}, false},
		{"top edge", Vec2{55, 100}, false},
		{"bottom edge", Vec2{55, 200}, false},
		{"just inside corner", Vec2{50.01, 100.01}, true},
		{"outside", Vec2{10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsStrict(tc.p); got != tc.expected {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(20, 300, 10, 120)

	if r.Right() != 30 {
		t.Errorf("Right() = %v, expected 30", r.Right())
	}
	if r.Bottom() != 420 {
		t.Errorf("Bottom() = %v, expected 420", r.Bottom())
	}
}

func TestSign(t *testing.T) {
	if Sign(140) != 1 {
		t.Error("Sign(140) should be 1")
	}
	if Sign(-0.5) != -1 {
		t.Error("Sign(-0.5) should be -1")
	}
	if Sign(0) != 0 {
		t.Error("Sign(0) should be 0")
	}
}
