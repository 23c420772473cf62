package hermite

import "testing"

func TestBoxAbs(t *testing.T) {
	b := Box{v3(1, -2, 3), v3(-1, 2, -3)}.Abs()
	diff(t, Box{v3(-1, -2, -3), v3(1, 2, 3)}, b)
	diff(t, v3(2, 4, 6), b.Size())
	diff(t, v3(0, 0, 0), b.Center())
	diff(t, b, NewBoxFromCenter(v3(0, 0, 0), v3(2, 4, 6)))
}

func TestBoxContains(t *testing.T) {
	b := NewBoxFromPoints(v3(0, 0, 0), v3(1, 1, 1))
	tests := []struct {
		pt   [3]float64
		want bool
	}{
		{[3]float64{0.5, 0.5, 0.5}, true},
		{[3]float64{0, 0, 0}, true},
		{[3]float64{1, 1, 1}, true},
		{[3]float64{1.5, 0.5, 0.5}, false},
		{[3]float64{0.5, -0.1, 0.5}, false},
		{[3]float64{0.5, 0.5, 2}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestBoxUnionIntersect(t *testing.T) {
	a := NewBoxFromPoints(v3(0, 0, 0), v3(2, 2, 2))
	b := NewBoxFromPoints(v3(1, 1, 1), v3(3, 4, 5))
	diff(t, Box{v3(0, 0, 0), v3(3, 4, 5)}, a.Union(b))
	diff(t, Box{v3(1, 1, 1), v3(2, 2, 2)}, a.Intersect(b))
	diff(t, Box{v3(-1, 0, 0), v3(2, 2, 7)}, a.UnionPoint(v3(-1, 1, 7)))

	far := NewBoxFromPoints(v3(10, 10, 10), v3(11, 11, 11))
	if in := a.Intersect(far); !in.IsEmpty() {
		t.Errorf("got non-empty intersection %v of disjoint boxes", in)
	}
	if a.IsEmpty() {
		t.Errorf("%v reported as empty", a)
	}
	if flat := NewBoxFromPoints(v3(0, 0, 0), v3(1, 0, 1)); !flat.IsEmpty() {
		t.Errorf("%v has zero volume but isn't empty", flat)
	}
}

func TestBoxInflate(t *testing.T) {
	b := NewBoxFromPoints(v3(0, 0, 0), v3(1, 2, 3)).Inflate(0.5)
	diff(t, Box{v3(-0.5, -0.5, -0.5), v3(1.5, 2.5, 3.5)}, b)
}
