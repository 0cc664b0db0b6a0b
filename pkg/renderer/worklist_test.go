package renderer

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, workers int
	}{
		{"even split", 8, 8, 4},
		{"uneven split", 7, 5, 3},
		{"more workers than lines", 4, 2, 6},
		{"single worker", 3, 3, 1},
		{"no workers requested", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := Partition(tt.width, tt.height, tt.workers)
			if len(assignment) != tt.width*tt.height {
				t.Fatalf("Expected %d entries, got %d", tt.width*tt.height, len(assignment))
			}

			workers := max(1, tt.workers)
			seen := 0
			for w := 0; w < workers; w++ {
				pixels := assignedPixels(assignment, w)
				seen += len(pixels)
				for _, idx := range pixels {
					if line := idx / tt.width; line%workers != w {
						t.Errorf("Pixel %d on line %d assigned to worker %d", idx, line, w)
					}
				}
			}
			if seen != tt.width*tt.height {
				t.Errorf("Expected every pixel assigned exactly once, got %d of %d", seen, tt.width*tt.height)
			}
		})
	}
}

func TestWorkList_PreservesAssignment(t *testing.T) {
	const n = 200
	random := rand.New(rand.NewSource(42))
	list := newWorkList(n)
	retired := make(map[int]bool)

	for pass := 0; list.Len() > 0; pass++ {
		list.Pass(func(slot int) bool {
			if retired[slot] {
				t.Fatalf("Pass %d: retired slot %d sampled again", pass, slot)
			}
			if random.Float64() < 0.2 {
				retired[slot] = true
				return true
			}
			return false
		})

		all := append(append([]int(nil), list.Active()...), list.Retired()...)
		sort.Ints(all)
		for i, slot := range all {
			if slot != i {
				t.Fatalf("Pass %d: active and retired slots are not a permutation of 0..%d", pass, n-1)
			}
		}
		for _, slot := range list.Retired() {
			if !retired[slot] {
				t.Errorf("Pass %d: slot %d retired without converging", pass, slot)
			}
		}
		for _, slot := range list.Active() {
			if retired[slot] {
				t.Errorf("Pass %d: converged slot %d still active", pass, slot)
			}
		}
	}

	if len(retired) != n {
		t.Errorf("Expected all %d slots retired, got %d", n, len(retired))
	}
}

func TestWorkList_KeepsOrder(t *testing.T) {
	list := newWorkList(6)
	list.Pass(func(slot int) bool { return slot%2 == 0 })

	expected := []int{1, 3, 5}
	active := list.Active()
	if len(active) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, active)
	}
	for i := range expected {
		if active[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, active)
			break
		}
	}
}

func TestJitterSequence(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	jitter := jitterSequence(64, random.Shuffle)

	if len(jitter) != 64 {
		t.Fatalf("Expected 64 entries, got %d", len(jitter))
	}
	counts := make(map[[2]float64]int)
	for _, j := range jitter {
		counts[j]++
	}
	for _, stratum := range [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if counts[stratum] != 16 {
			t.Errorf("Expected stratum %v 16 times, got %d", stratum, counts[stratum])
		}
	}

	unshuffled := jitterSequence(4, func(int, func(i, j int)) {})
	expected := [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i := range expected {
		if unshuffled[i] != expected[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, expected[i], unshuffled[i])
		}
	}
}
