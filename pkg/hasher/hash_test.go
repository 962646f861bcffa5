package hasher

import "testing"

func TestHash_Deterministic(t *testing.T) {
	in := "same input"
	h1 := Hash(in)
	h2 := Hash(in)
	if h1 != h2 {
		t.Fatalf("hash must be deterministic, got %s vs %s", h1, h2)
	}
}

func TestHash_DifferentInputs(t *testing.T) {
	if Hash("a") == Hash("b") {
		t.Fatalf("different inputs should not produce the same hash")
	}
}

func TestHash_KnownVector(t *testing.T) {
	// SHA-256("hello") per the standard test vectors
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := Hash("hello")
	if got != want {
		t.Fatalf("unexpected hash: got %s want %s", got, want)
	}
}

func TestSumRows_CellBoundaries(t *testing.T) {
	// Moving a character across a cell boundary must change the digest.
	a := SumRows([][]string{{"ab", "c"}})
	b := SumRows([][]string{{"a", "bc"}})
	if a == b {
		t.Fatalf("cell boundaries must affect the digest")
	}
}

func TestSumRows_RowBoundaries(t *testing.T) {
	a := SumRows([][]string{{"x"}, {"y"}})
	b := SumRows([][]string{{"x", "y"}})
	if a == b {
		t.Fatalf("row boundaries must affect the digest")
	}
}

func BenchmarkSumRows(b *testing.B) {
	rows := make([][]string, 200)
	for i := range rows {
		rows[i] = []string{"12.03.2024", "Alice Smith", "14:00", "15:30", "1,5", "30,0"}
	}

	for b.Loop() {
		_ = SumRows(rows)
	}
}
