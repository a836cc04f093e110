package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// All values in [-1, 1].
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicSineReproducible(t *testing.T) {
	a := DeterministicSine(440, 44100, 0.5, 100)
	b := DeterministicSine(440, 44100, 0.5, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	if len(imp) != 8 {
		t.Fatalf("len = %d, want 8", len(imp))
	}
	for i, v := range imp {
		if i == 3 {
			if v != 1 {
				t.Fatalf("imp[3] = %v, want 1", v)
			}
		} else if v != 0 {
			t.Fatalf("imp[%d] = %v, want 0", i, v)
		}
	}
}

func TestImpulseOutOfBounds(t *testing.T) {
	imp := Impulse(4, 10)
	for i, v := range imp {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 0.5, 4)
	want := []float64{1, 1.5, 2, 2.5}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Ramp[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestNoiseMatrixShapeAndRows(t *testing.T) {
	m := NoiseMatrix(7, 1, 3, 5)
	if len(m) != 3 {
		t.Fatalf("rows = %d, want 3", len(m))
	}
	for r, row := range m {
		if len(row) != 5 {
			t.Fatalf("row %d: len = %d, want 5", r, len(row))
		}
	}
	if m[0][0] == m[1][0] && m[0][1] == m[1][1] {
		t.Fatal("rows should use distinct seeds")
	}
}

func TestDeterministicComplexNoise(t *testing.T) {
	a := DeterministicComplexNoise(3, 2, 32)
	b := DeterministicComplexNoise(3, 2, 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("complex noise not deterministic at index %d", i)
		}
		if math.Abs(real(a[i])) > 2 || math.Abs(imag(a[i])) > 2 {
			t.Fatalf("index %d: %v exceeds amplitude", i, a[i])
		}
	}
}

func TestConstantMatrix(t *testing.T) {
	m := ConstantMatrix(2.5, 2, 3)
	for r := range m {
		for c, v := range m[r] {
			if v != 2.5 {
				t.Fatalf("(%d,%d) = %v, want 2.5", r, c, v)
			}
		}
	}
	if got := ComplexNoiseMatrix(1, 1, 4, 2); len(got) != 4 || len(got[3]) != 2 {
		t.Fatalf("ComplexNoiseMatrix shape = %dx%d, want 4x2", len(got), len(got[3]))
	}
}
