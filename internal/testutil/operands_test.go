package testutil

import "testing"

func TestDeterministicBases(t *testing.T) {
	a := DeterministicBases(7, 1e-3, 1e3, 256)
	b := DeterministicBases(7, 1e-3, 1e3, 256)
	if len(a) != 256 {
		t.Fatalf("len = %d, want 256", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 1e-3*0.999 || a[i] > 1e3*1.001 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicExponents(t *testing.T) {
	e := DeterministicExponents(7, -4, 4, 128)
	for i, v := range e {
		if v < -4 || v >= 4 {
			t.Fatalf("e[%d] = %v out of range", i, v)
		}
	}
}

func TestIntegers(t *testing.T) {
	got := Integers(-2, 2)
	want := []float64{-2, -1, 0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Integers(3, 2) != nil {
		t.Fatal("expected nil for empty range")
	}
}
