package cli

import "testing"

func TestParseLine_CommaSeparated(t *testing.T) {
	got, err := ParseLine("1.5,2.5,3.5", 3)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	want := []float64{1.5, 2.5, 3.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestParseLine_SpaceSeparated(t *testing.T) {
	got, err := ParseLine("1 2 3", 3)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got = %v; want [1 2 3]", got)
	}
}

func TestParseLine_MixedDelimiters(t *testing.T) {
	got, err := ParseLine("1, 2,  3", 3)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got = %v; want [1 2 3]", got)
	}
}

func TestParseLine_ExtraFieldsIgnored(t *testing.T) {
	got, err := ParseLine("1,2,3,4,5", 2)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d; want 2", len(got))
	}
}

func TestParseLine_TooFewFields(t *testing.T) {
	if _, err := ParseLine("1,2", 3); err == nil {
		t.Error("ParseLine should error when fewer than width fields are present")
	}
}

func TestParseLine_MalformedField(t *testing.T) {
	if _, err := ParseLine("1,notanumber", 2); err == nil {
		t.Error("ParseLine should error on a non-numeric field")
	}
}

func TestParseLine_EmptyLine(t *testing.T) {
	if _, err := ParseLine("", 1); err == nil {
		t.Error("ParseLine should error on an empty line")
	}
}
