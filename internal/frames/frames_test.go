package frames

import (
	"errors"
	"sync"
	"testing"
)

func TestCount(t *testing.T) {
	if got := Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if Count() != len(table) {
		t.Errorf("Count() = %d disagrees with table length %d", Count(), len(table))
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    Frame
		wantErr bool
	}{
		{
			name:  "Person",
			index: 0,
			want:  Frame{0xa0148120, 0x09c1c801, 0x409402c0, 0x00000002},
		},
		{
			name:  "Person2",
			index: 1,
			want:  Frame{0x804a0048, 0x39004e05, 0x002900d0, 0x00000009},
		},
		{name: "One past the end", index: 2, wantErr: true},
		{name: "Far past the end", index: 1 << 20, wantErr: true},
		{name: "Negative", index: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.index)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("Get(%d) error = %v, want ErrOutOfRange", tt.index, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%d) failed: %v", tt.index, err)
			}
			if got != tt.want {
				t.Errorf("Get(%d) = %#x, want %#x", tt.index, got, tt.want)
			}
		})
	}
}

func TestEveryFrameHasFourWords(t *testing.T) {
	for i := 0; i < Count(); i++ {
		f, err := Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if len(f) != 4 {
			t.Errorf("frame %d has %d words, want 4", i, len(f))
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	f, _ := Get(0)
	f[0] = 0

	again, _ := Get(0)
	if again[0] != 0xa0148120 {
		t.Errorf("table was mutated through a returned frame: got %#x", again[0])
	}
}

func TestName(t *testing.T) {
	for i, want := range []string{"Person", "Person2"} {
		got, err := Name(i)
		if err != nil {
			t.Fatalf("Name(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Name(%d) = %q, want %q", i, got, want)
		}
	}
	if _, err := Name(Count()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Name(%d) error = %v, want ErrOutOfRange", Count(), err)
	}
}

func TestIndexOf(t *testing.T) {
	i, ok := IndexOf("Person2")
	if !ok || i != 1 {
		t.Fatalf("IndexOf(Person2) = %d, %v; want 1, true", i, ok)
	}

	if i, ok := IndexOf("person"); ok || i != -1 {
		t.Errorf("IndexOf(person) = %d, %v; want -1, false (names are case sensitive)", i, ok)
	}
}

func TestAll(t *testing.T) {
	want := []Frame{person, person2}

	// Two passes: the sequence must restart from the beginning.
	for pass := 0; pass < 2; pass++ {
		var got []Frame
		next := 0
		for i, f := range All() {
			if i != next {
				t.Fatalf("pass %d: got index %d, want %d", pass, i, next)
			}
			got = append(got, f)
			next++
		}
		if len(got) != len(want) {
			t.Fatalf("pass %d: got %d frames, want %d", pass, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: frame %d = %#x, want %#x", pass, i, got[i], want[i])
			}
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	seen := 0
	for range All() {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("expected iteration to stop after 1 frame, saw %d", seen)
	}
}

func TestEntries(t *testing.T) {
	var names []string
	for e := range Entries() {
		f, err := Get(e.Index)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", e.Index, err)
		}
		if f != e.Frame {
			t.Errorf("entry %d frame mismatch", e.Index)
		}
		names = append(names, e.Name)
	}
	if len(names) != 2 || names[0] != "Person" || names[1] != "Person2" {
		t.Errorf("unexpected entry names: %v", names)
	}
}

func TestConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, f := range All() {
				got, err := Get(i)
				if err != nil || got != f {
					t.Errorf("Get(%d) = %#x, %v; want %#x", i, got, err, f)
				}
			}
		}()
	}
	wg.Wait()
}
