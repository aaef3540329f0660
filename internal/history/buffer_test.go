package history

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("uses requested capacity", func(t *testing.T) {
		b := New(3)
		if b.Cap() != 3 {
			t.Errorf("expected capacity 3, got %d", b.Cap())
		}
		if b.Len() != 0 {
			t.Errorf("expected empty buffer, got %d entries", b.Len())
		}
	})

	t.Run("falls back to default capacity", func(t *testing.T) {
		for _, c := range []int{0, -1} {
			b := New(c)
			if b.Cap() != DefaultCapacity {
				t.Errorf("New(%d): expected capacity %d, got %d", c, DefaultCapacity, b.Cap())
			}
		}
	})
}

func TestBuffer_KeepsLastNInInsertionOrder(t *testing.T) {
	for capacity := 1; capacity <= 6; capacity++ {
		for m := 0; m <= 12; m++ {
			b := New(capacity)

			var inserted []string
			for i := 0; i < m; i++ {
				label := fmt.Sprintf("g%d", i)
				inserted = append(inserted, label)
				if !b.Append(label) {
					t.Fatalf("Append(%q) returned false", label)
				}
			}

			want := inserted
			if len(want) > capacity {
				want = want[len(want)-capacity:]
			}
			if want == nil {
				want = []string{}
			}

			got := b.Snapshot()
			if len(got) != min(m, capacity) {
				t.Errorf("N=%d M=%d: expected %d entries, got %d", capacity, m, min(m, capacity), len(got))
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("N=%d M=%d: expected %v, got %v", capacity, m, want, got)
			}
		}
	}
}

func TestBuffer_DuplicatesDoNotAffectEviction(t *testing.T) {
	b := New(3)
	for _, l := range []string{"Hello", "Yes", "Hello", "No"} {
		b.Append(l)
	}

	want := []string{"Yes", "Hello", "No"}
	if got := b.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuffer_IgnoresInvalidLabels(t *testing.T) {
	b := New(DefaultCapacity)
	b.Append("Hello")

	for _, label := range []string{"No gesture", ""} {
		if b.Append(label) {
			t.Errorf("Append(%q) should return false", label)
		}
	}

	if got := b.Snapshot(); !reflect.DeepEqual(got, []string{"Hello"}) {
		t.Errorf("expected [Hello], got %v", got)
	}

	if got := b.Push("No gesture"); !reflect.DeepEqual(got, []string{"Hello"}) {
		t.Errorf("Push of sentinel should not mutate, got %v", got)
	}
}

func TestBuffer_PushReturnsSnapshot(t *testing.T) {
	b := New(2)
	b.Push("Hello")
	got := b.Push("Thank you")

	want := []string{"Hello", "Thank you"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// The snapshot is a copy.
	got[0] = "changed"
	if b.Snapshot()[0] != "Hello" {
		t.Error("mutating a snapshot must not change the buffer")
	}
}

func TestBuffer_ConcurrentAccess(t *testing.T) {
	b := New(DefaultCapacity)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			b.Push(fmt.Sprintf("g%d", i))
		}(i)
		go func() {
			defer wg.Done()
			if n := len(b.Snapshot()); n > DefaultCapacity {
				t.Errorf("snapshot exceeded capacity: %d", n)
			}
		}()
	}
	wg.Wait()

	if b.Len() != DefaultCapacity {
		t.Errorf("expected %d entries, got %d", DefaultCapacity, b.Len())
	}
}
