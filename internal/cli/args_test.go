package cli

import "testing"

func TestParseArgs_TooFew(t *testing.T) {
	if _, ok := ParseArgs(nil); ok {
		t.Error("ParseArgs should reject zero arguments")
	}
	if _, ok := ParseArgs([]string{"2"}); ok {
		t.Error("ParseArgs should reject a single argument")
	}
}

func TestParseArgs_DimsAndWindow(t *testing.T) {
	a, ok := ParseArgs([]string{"3", "100"})
	if !ok {
		t.Fatal("ParseArgs should accept two arguments")
	}
	if a.Dims != 3 || a.Window != 100 {
		t.Errorf("a = %+v; want Dims=3 Window=100", a)
	}
	if a.Stream != "" {
		t.Errorf("Stream = %q; want empty (stdin)", a.Stream)
	}
}

func TestParseArgs_WithStream(t *testing.T) {
	a, ok := ParseArgs([]string{"2", "50", "data.txt"})
	if !ok {
		t.Fatal("ParseArgs should accept three arguments")
	}
	if a.Stream != "data.txt" {
		t.Errorf("Stream = %q; want data.txt", a.Stream)
	}
}

func TestParseArgs_UnparseableNumericsYieldZero(t *testing.T) {
	a, ok := ParseArgs([]string{"abc", "xyz"})
	if !ok {
		t.Fatal("ParseArgs should still accept two arguments")
	}
	if a.Dims != 0 || a.Window != 0 {
		t.Errorf("a = %+v; want Dims=0 Window=0 for unparseable input", a)
	}
}
