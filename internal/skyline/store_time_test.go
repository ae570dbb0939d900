package skyline

import "testing"

func TestTimeStore_PutGet(t *testing.T) {
	s := newTimeStore(2, 4, 2, 10)
	s.put(Tuple{1, 2}, 0, true)

	v, ok := s.get(0)
	if !ok || v[0] != 1 || v[1] != 2 {
		t.Fatalf("get(0) = %v, %v; want [1 2], true", v, ok)
	}
	if !s.contains(0) {
		t.Fatal("stamp 0 should be present")
	}
}

func TestTimeStore_ExpiredBefore(t *testing.T) {
	s := newTimeStore(1, 8, 2, 5) // 5 second window
	s.put(Tuple{1}, 0, true)
	s.put(Tuple{2}, 3, true)
	s.put(Tuple{3}, 4, true)

	expired := s.expiredBefore(10) // 10-0=10 > 5; 10-3=7 > 5; 10-4=6 > 5
	if len(expired) != 3 {
		t.Fatalf("expiredBefore(10) = %v; want all 3 stamps", expired)
	}

	expired = s.expiredBefore(7) // 7-0=7 > 5; 7-3=4 not > 5
	if len(expired) != 1 || expired[0] != 0 {
		t.Fatalf("expiredBefore(7) = %v; want [0]", expired)
	}
}

func TestTimeStore_Clean(t *testing.T) {
	s := newTimeStore(1, 8, 2, 5)
	s.put(Tuple{1}, 0, true)
	s.put(Tuple{2}, 1, true)

	s.clean([]Stamp{0})
	if s.contains(0) {
		t.Fatal("stamp 0 should have been cleaned")
	}
	if !s.contains(1) {
		t.Fatal("stamp 1 should remain")
	}
	if s.size() != 1 {
		t.Errorf("size = %d; want 1", s.size())
	}
}

func TestTimeStore_EvictsWhenPoolExhausted(t *testing.T) {
	s := newTimeStore(1, 2, 1, 1000)
	s.put(Tuple{1}, 0, true)
	s.put(Tuple{2}, 1, true)
	s.put(Tuple{3}, 2, true) // pool only holds 2; oldest (stamp 0) is evicted

	if s.contains(0) {
		t.Fatal("stamp 0 should have been evicted once the pool was exhausted")
	}
	if !s.contains(1) || !s.contains(2) {
		t.Fatal("stamps 1 and 2 should remain")
	}
}

func TestTimeStore_SkylineFlag(t *testing.T) {
	s := newTimeStore(1, 4, 2, 10)
	s.put(Tuple{1}, 0, false)

	flag, ok := s.skylineFlag(0)
	if !ok || flag {
		t.Fatalf("skylineFlag(0) = %v, %v; want false, true", flag, ok)
	}
	s.setSkylineFlag(0, true)
	flag, _ = s.skylineFlag(0)
	if !flag {
		t.Error("flag should now be true")
	}
}
