package skyline

import "testing"

func TestDominate_StrictlyBetter(t *testing.T) {
	p := Tuple{1, 2, 3}
	q := Tuple{2, 3, 4}
	if !Dominate(p, q) {
		t.Fatal("p should dominate q")
	}
	if Dominate(q, p) {
		t.Fatal("q should not dominate p")
	}
}

func TestDominate_Equal(t *testing.T) {
	p := Tuple{1, 2, 3}
	q := Tuple{1, 2, 3}
	if Dominate(p, q) {
		t.Fatal("identical tuples must not dominate each other")
	}
}

func TestDominate_MixedAxes(t *testing.T) {
	p := Tuple{1, 5}
	q := Tuple{2, 4}
	if Dominate(p, q) {
		t.Fatal("p is worse on dimension 1, should not dominate")
	}
	if Dominate(q, p) {
		t.Fatal("q is worse on dimension 0, should not dominate")
	}
}

func TestDominate_CountIncrements(t *testing.T) {
	before := DominanceTestCount()
	Dominate(Tuple{0}, Tuple{1})
	after := DominanceTestCount()
	if after != before+1 {
		t.Errorf("DominanceTestCount = %d; want %d", after, before+1)
	}
}
