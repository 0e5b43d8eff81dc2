package common

import "testing"

func TestMakeRandHexString(t *testing.T) {
	s1, err := MakeRandHexString(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := MakeRandHexString(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s1) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(s1))
	}
	if s1 == s2 {
		t.Errorf("expected two independent strings to differ")
	}
}
