package skyline

import "testing"

func TestCountStore_PutGet(t *testing.T) {
	s := newCountStore(2, 3)

	s0 := s.put(Tuple{1, 2}, true)
	s1 := s.put(Tuple{3, 4}, false)

	v, ok := s.get(s0)
	if !ok || v[0] != 1 || v[1] != 2 {
		t.Fatalf("get(s0) = %v, %v; want [1 2], true", v, ok)
	}
	flag, ok := s.skylineFlag(s0)
	if !ok || !flag {
		t.Fatalf("skylineFlag(s0) = %v, %v; want true, true", flag, ok)
	}

	v, ok = s.get(s1)
	if !ok || v[0] != 3 || v[1] != 4 {
		t.Fatalf("get(s1) = %v, %v; want [3 4], true", v, ok)
	}
}

func TestCountStore_WindowOverwrite(t *testing.T) {
	s := newCountStore(1, 2)
	s.put(Tuple{1}, true)
	s.put(Tuple{2}, true)
	s.put(Tuple{3}, true) // overwrites stamp 0's slot

	if s.contains(0) {
		t.Fatal("stamp 0 should have fallen out of the window")
	}
	if !s.contains(1) || !s.contains(2) {
		t.Fatal("stamps 1 and 2 should still be in the window")
	}
	if s.size() != 2 {
		t.Errorf("size = %d; want 2", s.size())
	}
}

func TestCountStore_SetSkylineFlag(t *testing.T) {
	s := newCountStore(1, 2)
	stamp := s.put(Tuple{1}, false)
	if ok := s.setSkylineFlag(stamp, true); !ok {
		t.Fatal("setSkylineFlag should succeed for an in-window stamp")
	}
	flag, _ := s.skylineFlag(stamp)
	if !flag {
		t.Error("flag should now be true")
	}
}
