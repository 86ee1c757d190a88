package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/yms/internal/adapters/sqlite"
	"github.com/example/yms/internal/ports/secondary"
)

func TestCounterRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCounterRepository(db)

	got, err := repo.Get(context.Background(), "Cartons")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing counter, got %+v", got)
	}
}

func TestCounterRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCounterRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, &secondary.CounterRecord{Category: "Cartons", IssuedTotal: 5, LastPrefix: "SBX", PrefixSeen: true})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	err = repo.Save(ctx, &secondary.CounterRecord{Category: "Cartons", IssuedTotal: 8, LastPrefix: "SBX", PrefixSeen: true})
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := repo.Get(ctx, "Cartons")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.IssuedTotal != 8 || got.LastPrefix != "SBX" || !got.PrefixSeen {
		t.Errorf("expected 8/SBX, got %+v", got)
	}
	if got.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestCounterRepository_DigitWidthRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCounterRepository(db)
	ctx := context.Background()

	seedCounter(t, db, "Crates", 4, "Stackbox")
	crates, err := repo.Get(ctx, "Crates")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if crates.DigitWidth != 0 {
		t.Errorf("expected unrecorded width 0, got %d", crates.DigitWidth)
	}

	if err := repo.Save(ctx, &secondary.CounterRecord{Category: "Cartons", IssuedTotal: 2, LastPrefix: "SBX", PrefixSeen: true, DigitWidth: 4}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, &secondary.CounterRecord{Category: "Cartons", IssuedTotal: 1, LastPrefix: "SBX", PrefixSeen: true, DigitWidth: 3}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	all, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	var cartons *secondary.CounterRecord
	for _, r := range all {
		if r.Category == "Cartons" {
			cartons = r
		}
	}
	if cartons == nil || cartons.DigitWidth != 3 || cartons.IssuedTotal != 1 {
		t.Errorf("expected Cartons 1 at width 3, got %+v", cartons)
	}
}

func TestCounterRepository_PrefixNullVersusEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCounterRepository(db)
	ctx := context.Background()

	repo.Save(ctx, &secondary.CounterRecord{Category: "Pallets", IssuedTotal: 0})
	repo.Save(ctx, &secondary.CounterRecord{Category: "Custom", IssuedTotal: 2, LastPrefix: "", PrefixSeen: true})

	pallets, _ := repo.Get(ctx, "Pallets")
	if pallets.PrefixSeen {
		t.Error("expected Pallets prefix to be unset")
	}
	custom, _ := repo.Get(ctx, "Custom")
	if !custom.PrefixSeen || custom.LastPrefix != "" {
		t.Errorf("expected Custom to keep an observed empty prefix, got %+v", custom)
	}
}

func TestCounterRepository_LoadAll(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db, "Pallets", 3, "SBPallet")
	seedCounter(t, db, "Crates", 1, "")
	repo := sqlite.NewCounterRepository(db)

	all, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 counters, got %d", len(all))
	}
	if all[0].Category != "Crates" || all[0].PrefixSeen {
		t.Errorf("expected Crates first with no prefix, got %+v", all[0])
	}
	if all[1].Category != "Pallets" || all[1].IssuedTotal != 3 {
		t.Errorf("expected Pallets at 3, got %+v", all[1])
	}
}

func TestCounterRepository_RecordBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCounterRepository(db)
	batches := sqlite.NewBatchLogRepository(db)
	ctx := context.Background()

	err := repo.RecordBatch(ctx,
		&secondary.CounterRecord{Category: "Cartons", IssuedTotal: 5, LastPrefix: "SBX", PrefixSeen: true},
		&secondary.BatchRecord{ID: "BATCH-001", RunID: "run-a", Category: "Cartons", Prefix: "SBX", StartCount: 1, EndCount: 5, RunStart: 1, ActorID: "dock-3"},
	)
	if err != nil {
		t.Fatalf("RecordBatch failed: %v", err)
	}

	counter, _ := repo.Get(ctx, "Cartons")
	if counter.IssuedTotal != 5 {
		t.Errorf("expected counter 5, got %d", counter.IssuedTotal)
	}
	latest, err := batches.GetLatest(ctx, "Cartons")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if latest.RunID != "run-a" || latest.ActorID != "dock-3" || latest.EndCount != 5 {
		t.Errorf("unexpected batch %+v", latest)
	}
}

func TestCounterRepository_RecordBatchIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db, "Cartons", 5, "SBX")
	seedBatch(t, db, "BATCH-001", "Cartons", "SBX", 1, 5)
	repo := sqlite.NewCounterRepository(db)
	ctx := context.Background()

	// Duplicate batch ID fails the insert after the counter update.
	err := repo.RecordBatch(ctx,
		&secondary.CounterRecord{Category: "Cartons", IssuedTotal: 8, LastPrefix: "SBX", PrefixSeen: true},
		&secondary.BatchRecord{ID: "BATCH-001", RunID: "run-b", Category: "Cartons", Prefix: "SBX", StartCount: 6, EndCount: 8, RunStart: 6},
	)
	if err == nil {
		t.Fatal("expected error for duplicate batch ID, got nil")
	}

	counter, _ := repo.Get(ctx, "Cartons")
	if counter.IssuedTotal != 5 {
		t.Errorf("expected counter rolled back to 5, got %d", counter.IssuedTotal)
	}
}
