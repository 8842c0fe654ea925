package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	want := Run{
		Seed:   99,
		Score:  7,
		Frames: 812,
		Jumps:  []int{0, 95, 210},
		Preset: "hard",
		Player: "rex",
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got.ID != id {
		t.Errorf("Expected ID %d, got %d", id, got.ID)
	}
	if got.Seed != want.Seed || got.Score != want.Score || got.Frames != want.Frames {
		t.Errorf("Run fields mismatch: got %+v", got)
	}
	if !reflect.DeepEqual(got.Jumps, want.Jumps) {
		t.Errorf("Expected jumps %v, got %v", want.Jumps, got.Jumps)
	}
	if got.Preset != "hard" || got.Player != "rex" {
		t.Errorf("Expected preset/player hard/rex, got %s/%s", got.Preset, got.Player)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunWithoutJumps(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(Run{Seed: 1, Frames: 90})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(got.Jumps) != 0 {
		t.Errorf("Expected no jumps, got %v", got.Jumps)
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTemp(t)

	_, err := store.Run(12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStoreRunsNewestFirstWithLimit(t *testing.T) {
	store := openTemp(t)

	// Same second timestamps, so order falls back to id
	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Seed: int64(i), Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.Runs(3)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("Runs not newest first: %v", runs)
	}
}

func TestStoreRunsDefaultLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 25; i++ {
		store.SaveRun(Run{Seed: int64(i)})
	}

	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	// Empty journal
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || st.Best != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for empty journal, got %+v", st)
	}

	store.SaveRun(Run{Score: 3})
	store.SaveRun(Run{Score: 9})
	store.SaveRun(Run{Score: 6})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 || st.Best != 9 {
		t.Errorf("Expected 3 runs with best 9, got %+v", st)
	}
	if st.AvgScore != 6 {
		t.Errorf("Expected average 6, got %f", st.AvgScore)
	}
}

func TestJumpsEncoding(t *testing.T) {
	tests := []struct {
		jumps []int
		text  string
	}{
		{nil, ""},
		{[]int{5}, "5"},
		{[]int{0, 80, 1234}, "0,80,1234"},
	}

	for _, tc := range tests {
		if got := encodeJumps(tc.jumps); got != tc.text {
			t.Errorf("encodeJumps(%v) = %q, want %q", tc.jumps, got, tc.text)
		}
		got, err := decodeJumps(tc.text)
		if err != nil {
			t.Fatalf("decodeJumps(%q) failed: %v", tc.text, err)
		}
		if len(got) != len(tc.jumps) || (len(got) > 0 && !reflect.DeepEqual(got, tc.jumps)) {
			t.Errorf("decodeJumps(%q) = %v, want %v", tc.text, got, tc.jumps)
		}
	}

	if _, err := decodeJumps("1,x"); err == nil {
		t.Error("Expected error for malformed jump list")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
