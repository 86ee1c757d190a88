package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/yms/internal/core/label"
	"github.com/example/yms/internal/core/labelerr"
)

func writeCatalog(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, ".yms", "categories.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestCatalogLoader_BuiltinsOnly(t *testing.T) {
	catalog, err := NewCatalogLoader(t.TempDir(), t.TempDir(), 0).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cartons, ok := catalog.Lookup("cartons")
	if !ok {
		t.Fatal("expected Cartons in catalog")
	}
	if cartons.Prefix != "SBX" || cartons.DigitWidth != 4 {
		t.Errorf("unexpected Cartons: %+v", cartons)
	}
	if len(catalog.Names()) != 5 {
		t.Errorf("expected 5 built-in categories, got %v", catalog.Names())
	}
}

func TestCatalogLoader_ProjectOverridesGlobal(t *testing.T) {
	home, project := t.TempDir(), t.TempDir()
	writeCatalog(t, home, `
categories:
  Cartons:
    prefix: CTN
    digit_width: 5
  Drums:
    prefix: DRM
    description: Steel drums
`)
	writeCatalog(t, project, `
categories:
  cartons:
    digit_width: 6
  Bins:
    prefix_mutable: true
`)

	catalog, err := NewCatalogLoader(home, project, 4).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cartons, _ := catalog.Lookup("Cartons")
	if cartons.Name != "Cartons" || cartons.Prefix != "CTN" || cartons.DigitWidth != 6 {
		t.Errorf("expected merged Cartons CTN/6, got %+v", cartons)
	}

	drums, ok := catalog.Lookup("drums")
	if !ok || drums.Prefix != "DRM" || drums.DigitWidth != 4 || drums.Policy != label.PolicyPadded {
		t.Errorf("expected Drums DRM/4/padded, got %+v (found=%v)", drums, ok)
	}

	bins, ok := catalog.Lookup("Bins")
	if !ok || !bins.PrefixMutable {
		t.Errorf("expected mutable Bins, got %+v (found=%v)", bins, ok)
	}

	names := catalog.Names()
	if names[0] != "Crates" || names[len(names)-1] != "Drums" {
		t.Errorf("expected built-ins first then extras sorted, got %v", names)
	}
}

func TestCatalogLoader_DefaultWidthAppliesToBuiltins(t *testing.T) {
	catalog, err := NewCatalogLoader("", "", 6).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	crates, _ := catalog.Lookup("Crates")
	if crates.DigitWidth != 6 {
		t.Errorf("expected width 6, got %d", crates.DigitWidth)
	}
}

func TestCatalogLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "fixed category without prefix", body: "categories:\n  Drums:\n    description: no prefix\n", wantErr: labelerr.ErrInvalidConfiguration},
		{name: "unknown policy", body: "categories:\n  Drums:\n    prefix: D\n    policy: roman\n", wantErr: labelerr.ErrInvalidConfiguration},
		{name: "width too large", body: "categories:\n  Drums:\n    prefix: D\n    digit_width: 40\n", wantErr: labelerr.ErrInvalidConfiguration},
		{name: "bad yaml", body: "categories: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := t.TempDir()
			writeCatalog(t, project, tt.body)

			_, err := NewCatalogLoader("", project, 4).Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteDefaultCatalog(t *testing.T) {
	dir := t.TempDir()

	wrote, err := WriteDefaultCatalog(dir)
	if err != nil || !wrote {
		t.Fatalf("expected catalog written, got wrote=%v err=%v", wrote, err)
	}
	wrote, err = WriteDefaultCatalog(dir)
	if err != nil || wrote {
		t.Fatalf("expected existing catalog kept, got wrote=%v err=%v", wrote, err)
	}

	catalog, err := NewCatalogLoader("", dir, 4).Load()
	if err != nil {
		t.Fatalf("Load of written catalog failed: %v", err)
	}
	lr, _ := catalog.Lookup("LR")
	if lr.Policy != label.PolicySimple || !lr.PrefixMutable {
		t.Errorf("expected LR simple/mutable after round trip, got %+v", lr)
	}
}
