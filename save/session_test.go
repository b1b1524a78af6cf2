package save

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func testManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "wave_director_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

func TestStoreDegradedMode(t *testing.T) {
	s := NewStore(nil)
	if s.Best() != nil || s.Last() != nil {
		t.Fatal("fresh degraded store should have no records")
	}

	if err := s.Record(42, 12, 150); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if s.Last() == nil || s.Last().Seed != 42 {
		t.Error("degraded store lost the in-memory record")
	}
	if s.Best() == nil || s.Best().HighestWave != 12 {
		t.Error("degraded store did not promote the best record")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	m := testManager(t)

	s := NewStore(m)
	if err := s.Record(7, 9, 80); err != nil {
		t.Fatalf("Record: %v", err)
	}

	reopened := NewStore(m)
	last := reopened.Last()
	if last == nil {
		t.Fatal("record did not survive reopen")
	}
	if last.Seed != 7 || last.HighestWave != 9 || last.TotalKills != 80 {
		t.Errorf("reloaded record %+v does not match saved run", last)
	}
	if last.PlayedAt == "" {
		t.Error("record missing timestamp")
	}
}

func TestStoreBestPromotion(t *testing.T) {
	m := testManager(t)
	s := NewStore(m)

	if err := s.Record(1, 10, 100); err != nil {
		t.Fatal(err)
	}
	// A worse run updates last but not best
	if err := s.Record(2, 4, 30); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(m)
	if got := reopened.Best(); got == nil || got.HighestWave != 10 {
		t.Errorf("best = %+v, want the wave-10 run", got)
	}
	if got := reopened.Last(); got == nil || got.Seed != 2 {
		t.Errorf("last = %+v, want the most recent run", got)
	}
}
