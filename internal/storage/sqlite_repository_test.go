package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "flowpomodoro-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestKeyValueRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "language", []byte(`"ZH"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get(ctx, "language")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `"ZH"` {
		t.Fatalf("unexpected value: %s", got)
	}

	if err := repo.Set(ctx, "language", []byte(`"EN"`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = repo.Get(ctx, "language")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if string(got) != `"EN"` {
		t.Fatalf("expected overwritten value, got: %s", got)
	}
}

func TestGetMissingKeyReturnsNotFound(t *testing.T) {
	repo := setupRepo(t)
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "tasks", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Delete(ctx, "tasks"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	if err := repo.Delete(ctx, "tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got: %v", err)
	}
}

func TestMigrateRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.Set(context.Background(), "theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("set after re-migrate: %v", err)
	}
}
