package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "yms.db")
	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, path
}

func TestOpen_FreshInstallIsFullyMigrated(t *testing.T) {
	conn, _ := openTestDB(t)

	version, err := CurrentVersion(conn)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("expected version %d, got %d", LatestVersion(), version)
	}

	for _, table := range []string{"counters", "label_batches"} {
		var n int
		if err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&n); err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	conn, path := openTestDB(t)
	if _, err := conn.Exec("INSERT INTO counters (category, issued_total) VALUES ('Cartons', 7)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	conn.Close()

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer again.Close()

	var total int
	if err := again.QueryRow("SELECT issued_total FROM counters WHERE category = 'Cartons'").Scan(&total); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if total != 7 {
		t.Errorf("expected 7, got %d", total)
	}
}

func TestRunMigrations_BuildsSchemaOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.db")
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer conn.Close()

	if err := RunMigrations(conn); err != nil {
		t.Fatalf("RunMigrations failed: %v", err)
	}
	if _, err := conn.Exec("INSERT INTO counters (category, issued_total, last_prefix, digit_width) VALUES ('Cartons', 5, 'SBX', 4)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// A second run finds nothing pending and leaves data alone.
	if err := RunMigrations(conn); err != nil {
		t.Fatalf("second RunMigrations failed: %v", err)
	}

	var width int
	if err := conn.QueryRow("SELECT digit_width FROM counters WHERE category = 'Cartons'").Scan(&width); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if width != 4 {
		t.Errorf("expected digit_width 4, got %d", width)
	}

	version, _ := CurrentVersion(conn)
	if version != LatestVersion() {
		t.Errorf("expected version %d, got %d", LatestVersion(), version)
	}
}

func TestSeedFixtures(t *testing.T) {
	conn, _ := openTestDB(t)

	if err := SeedFixtures(conn); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	var counters, batches int
	conn.QueryRow("SELECT COUNT(*) FROM counters").Scan(&counters)
	conn.QueryRow("SELECT COUNT(*) FROM label_batches").Scan(&batches)
	if counters != 5 || batches != 5 {
		t.Errorf("expected 5 counters and 5 batches, got %d and %d", counters, batches)
	}

	var prefix sql.NullString
	conn.QueryRow("SELECT last_prefix FROM counters WHERE category = 'Pallets'").Scan(&prefix)
	if prefix.Valid {
		t.Errorf("expected Pallets last_prefix to be null, got %q", prefix.String)
	}
}

func TestGetDBPath_Override(t *testing.T) {
	t.Cleanup(func() { SetPath("") })
	t.Setenv(PathEnv, "")

	SetPath("/tmp/custom.db")
	path, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath failed: %v", err)
	}
	if path != "/tmp/custom.db" {
		t.Errorf("expected override, got %s", path)
	}
}

func TestGetDBPath_EnvWins(t *testing.T) {
	t.Cleanup(func() { SetPath("") })
	t.Setenv(PathEnv, "/tmp/dev.db")

	SetPath("/tmp/custom.db")
	path, _ := GetDBPath()
	if path != "/tmp/dev.db" {
		t.Errorf("expected env path, got %s", path)
	}
}
