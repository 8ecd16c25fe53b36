package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "solver.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestSolveCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(Solve{
		Scramble:      "R U F' D2",
		Solution:      "D2 F U' R'",
		ScrambleMoves: 4,
		SolutionMoves: 4,
		DurationMs:    12,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Scramble != "R U F' D2" || got.Solution != "D2 F U' R'" {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
	if got.UsedFallback {
		t.Error("UsedFallback should default to false")
	}
}

func TestSolveGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	if _, err := repo.Get("no-such-id"); err == nil {
		t.Error("Get of missing solve should fail")
	}
}

func TestSolveList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(Solve{
			Scramble:      "R U",
			Solution:      "U' R'",
			ScrambleMoves: 2,
			SolutionMoves: 2,
			UsedFallback:  i == 2,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(solves))
	}

	solves, err = repo.List(2)
	if err != nil {
		t.Fatalf("List with limit failed: %v", err)
	}
	if len(solves) != 2 {
		t.Errorf("Expected 2 solves with limit, got %d", len(solves))
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("Second MigrateUp failed: %v", err)
	}
}
