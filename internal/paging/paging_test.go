package paging

import "testing"

// TestPageSizes checks that every page holds exactly the expected number of
// items for a range of collection sizes.
func TestPageSizes(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 19, 20, 25} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for page := 1; page <= n/PerPage+2; page++ {
			want := n - (page-1)*PerPage
			if want < 0 {
				want = 0
			}
			if want > PerPage {
				want = PerPage
			}
			got := Page(items, page)
			if len(got) != want {
				t.Fatalf("n=%d page=%d: expected %d items, got %d", n, page, want, len(got))
			}
		}
	}
}

// TestPageReconstruction checks that concatenating all pages reproduces the
// original sequence in order.
func TestPageReconstruction(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i * 3
	}

	var rebuilt []int
	for page := 1; ; page++ {
		chunk := Page(items, page)
		if len(chunk) == 0 {
			break
		}
		rebuilt = append(rebuilt, chunk...)
	}

	if len(rebuilt) != len(items) {
		t.Fatalf("expected %d items after reconstruction, got %d", len(items), len(rebuilt))
	}
	for i := range items {
		if rebuilt[i] != items[i] {
			t.Fatalf("order broken at index %d: expected %d, got %d", i, items[i], rebuilt[i])
		}
	}
}

func TestPageOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := Page(items, 2); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
	if got := Page(items, 1000); len(got) != 0 {
		t.Fatalf("expected empty page far past the end, got %v", got)
	}
}

func TestPageBelowOne(t *testing.T) {
	items := []int{1, 2, 3}
	got := Page(items, 0)
	if len(got) != 3 {
		t.Fatalf("page 0 should behave as page 1, got %v", got)
	}
	if got[0] != 1 {
		t.Fatalf("expected first item 1, got %d", got[0])
	}
}
