package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/yms/internal/adapters/sqlite"
	"github.com/example/yms/internal/ports/secondary"
)

func TestBatchLogRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewBatchLogRepository(db)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "BATCH-001" {
		t.Errorf("expected BATCH-001, got %s", id)
	}

	seedBatch(t, db, "BATCH-009", "Cartons", "SBX", 1, 2)
	id, _ = repo.GetNextID(ctx)
	if id != "BATCH-010" {
		t.Errorf("expected BATCH-010, got %s", id)
	}
}

func TestBatchLogRepository_GetLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewBatchLogRepository(db)
	ctx := context.Background()

	got, err := repo.GetLatest(ctx, "Cartons")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil with no batches, got %+v", got)
	}

	seedBatch(t, db, "BATCH-001", "Cartons", "SBX", 1, 5)
	seedBatch(t, db, "BATCH-002", "Crates", "Stackbox", 1, 2)
	seedBatch(t, db, "BATCH-010", "Cartons", "SBX", 6, 8)

	got, err = repo.GetLatest(ctx, "Cartons")
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if got.ID != "BATCH-010" || got.StartCount != 6 || got.Continuation {
		t.Errorf("expected BATCH-010 from 6, got %+v", got)
	}
}

func TestBatchLogRepository_List(t *testing.T) {
	db := setupTestDB(t)
	seedBatch(t, db, "BATCH-001", "Cartons", "SBX", 1, 5)
	seedBatch(t, db, "BATCH-002", "Crates", "Stackbox", 1, 2)
	seedBatch(t, db, "BATCH-003", "Cartons", "SBX", 6, 8)
	repo := sqlite.NewBatchLogRepository(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters secondary.BatchFilters
		wantIDs []string
	}{
		{name: "all newest first", filters: secondary.BatchFilters{}, wantIDs: []string{"BATCH-003", "BATCH-002", "BATCH-001"}},
		{name: "by category", filters: secondary.BatchFilters{Category: "Cartons"}, wantIDs: []string{"BATCH-003", "BATCH-001"}},
		{name: "limit", filters: secondary.BatchFilters{Limit: 1}, wantIDs: []string{"BATCH-003"}},
		{name: "no match", filters: secondary.BatchFilters{Category: "Pallets"}, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d batches, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}
