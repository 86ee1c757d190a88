package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/yms/internal/db"
)

func TestDevReset_RequiresEnv(t *testing.T) {
	t.Setenv(db.PathEnv, "")

	cmd := DevCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"reset", "--force"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), db.PathEnv) {
		t.Fatalf("expected %s safety error, got %v", db.PathEnv, err)
	}
}

func TestDevReset_SeedsFreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.db")
	t.Setenv(db.PathEnv, path)
	t.Cleanup(func() { db.Close() })

	out := &bytes.Buffer{}
	cmd := DevCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"reset", "--force"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		t.Fatalf("GetDB failed: %v", err)
	}
	var total int
	if err := database.QueryRow("SELECT issued_total FROM counters WHERE category = 'Cartons'").Scan(&total); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if total != 9998 {
		t.Errorf("expected seeded Cartons at 9998, got %d", total)
	}
}

func TestDevReset_AbortWithoutConfirmation(t *testing.T) {
	t.Setenv(db.PathEnv, filepath.Join(t.TempDir(), "dev.db"))

	out := &bytes.Buffer{}
	cmd := DevCmd()
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"reset"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("expected abort message, got %q", out.String())
	}
}
