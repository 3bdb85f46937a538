package bitvec

import "testing"

func TestBitmap_Range(t *testing.T) {
	b := New()
	mustSet(t, b, 0, 7, 8, 31, 64)

	var got []int
	b.Range(func(x int) bool {
		got = append(got, x)
		return true
	})

	want := []int{0, 7, 8, 31, 64}
	if len(got) != len(want) {
		t.Fatalf("Range visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Range visited %v, want %v", got, want)
		}
	}
}

func TestBitmap_RangeEarlyExit(t *testing.T) {
	b := New()
	mustSet(t, b, 1, 2, 3, 4, 5)

	visits := 0
	b.Range(func(x int) bool {
		visits++
		return x < 3
	})

	if visits != 3 {
		t.Errorf("expected 3 visits before stop, got %d", visits)
	}
}

func TestBitmap_RangeMatchesContains(t *testing.T) {
	b := New()
	mustSet(t, b, 2, 3, 5, 7, 11, 13, 90)

	prev := -1
	count := 0
	b.Range(func(x int) bool {
		if x <= prev {
			t.Fatalf("indices not strictly increasing: %d after %d", x, prev)
		}
		if !b.Contains(x) {
			t.Fatalf("Range yielded %d but Contains(%d) is false", x, x)
		}
		prev = x
		count++
		return true
	})

	if count != b.Count() {
		t.Errorf("Range visited %d indices, Count() = %d", count, b.Count())
	}
}

func TestBitmap_All(t *testing.T) {
	b := New()
	mustSet(t, b, 3, 9, 27)

	want := []int{3, 9, 27}

	// Restartable: two full passes yield the same sequence.
	for pass := 0; pass < 2; pass++ {
		got := collect(b)
		if len(got) != len(want) {
			t.Fatalf("pass %d: All yielded %v, want %v", pass, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pass %d: All yielded %v, want %v", pass, got, want)
			}
		}
	}
}

func TestBitmap_AllBreak(t *testing.T) {
	b := New()
	mustSet(t, b, 1, 2, 3)

	var got []int
	for x := range b.All() {
		got = append(got, x)
		if len(got) == 2 {
			break
		}
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected [1 2] before break, got %v", got)
	}
}

func TestBitmap_RangeEmpty(t *testing.T) {
	b := New()

	b.Range(func(x int) bool {
		t.Fatalf("unexpected visit of %d on empty bitmap", x)
		return false
	})
}
