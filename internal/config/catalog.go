package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/yms/internal/core/category"
	"github.com/example/yms/internal/core/label"
)

const catalogFile = "categories.yaml"

// CatalogFile is the on-disk shape of categories.yaml.
type CatalogFile struct {
	Categories map[string]CategoryEntry `yaml:"categories"`
}

// CategoryEntry describes one category. Unset fields inherit from the
// built-in category of the same name, if any.
type CategoryEntry struct {
	Prefix        string `yaml:"prefix,omitempty"`
	DigitWidth    int    `yaml:"digit_width,omitempty"`
	Policy        string `yaml:"policy,omitempty"`
	PrefixMutable *bool  `yaml:"prefix_mutable,omitempty"`
	Description   string `yaml:"description,omitempty"`
}

// CatalogLoader reads categories.yaml from the home and project .yms dirs.
type CatalogLoader struct {
	homeDir      string
	projectDir   string
	defaultWidth int
}

// NewCatalogLoader creates a new catalog loader. Either dir may be empty.
func NewCatalogLoader(homeDir, projectDir string, defaultWidth int) *CatalogLoader {
	if defaultWidth == 0 {
		defaultWidth = category.DefaultDigitWidth
	}
	return &CatalogLoader{
		homeDir:      homeDir,
		projectDir:   projectDir,
		defaultWidth: defaultWidth,
	}
}

// Load builds the category catalog: built-ins, then the global file, then
// the project file, each overriding earlier entries by name.
func (l *CatalogLoader) Load() (*category.Catalog, error) {
	base := category.Defaults()
	for i := range base {
		base[i].DigitWidth = l.defaultWidth
	}

	merged := make(map[string]CategoryEntry)
	if l.homeDir != "" {
		if err := l.loadFile(filepath.Join(l.homeDir, dirName, catalogFile), merged); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load global catalog: %w", err)
		}
	}
	if l.projectDir != "" {
		if err := l.loadFile(filepath.Join(l.projectDir, dirName, catalogFile), merged); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project catalog: %w", err)
		}
	}

	overrides := make(map[string]category.Category, len(merged))
	for name, entry := range merged {
		cat, err := l.resolve(name, entry, base)
		if err != nil {
			return nil, err
		}
		overrides[name] = cat
	}

	return category.NewCatalog(category.Merge(base, overrides)...)
}

// loadFile merges one file into entries; later files win per field.
func (l *CatalogLoader) loadFile(path string, entries map[string]CategoryEntry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for name, entry := range file.Categories {
		key := canonicalKey(entries, name)
		entries[key] = overlay(entries[key], entry)
	}
	return nil
}

func (l *CatalogLoader) resolve(name string, entry CategoryEntry, base []category.Category) (category.Category, error) {
	cat := category.Category{Name: name, DigitWidth: l.defaultWidth, Policy: label.PolicyPadded}
	for _, b := range base {
		if strings.EqualFold(b.Name, name) {
			cat = b
			break
		}
	}

	if entry.Prefix != "" {
		cat.Prefix = entry.Prefix
	}
	if entry.DigitWidth != 0 {
		cat.DigitWidth = entry.DigitWidth
	}
	if entry.Policy != "" {
		policy, err := label.ParsePolicy(entry.Policy)
		if err != nil {
			return category.Category{}, fmt.Errorf("category %s: %w", name, err)
		}
		cat.Policy = policy
	}
	if entry.PrefixMutable != nil {
		cat.PrefixMutable = *entry.PrefixMutable
	}
	if entry.Description != "" {
		cat.Description = entry.Description
	}
	return cat, nil
}

func overlay(dst, src CategoryEntry) CategoryEntry {
	if src.Prefix != "" {
		dst.Prefix = src.Prefix
	}
	if src.DigitWidth != 0 {
		dst.DigitWidth = src.DigitWidth
	}
	if src.Policy != "" {
		dst.Policy = src.Policy
	}
	if src.PrefixMutable != nil {
		dst.PrefixMutable = src.PrefixMutable
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	return dst
}

// canonicalKey keeps the first spelling seen for a case-insensitive name.
func canonicalKey(entries map[string]CategoryEntry, name string) string {
	for existing := range entries {
		if strings.EqualFold(existing, name) {
			return existing
		}
	}
	return name
}

// WriteDefaultCatalog writes the built-in categories to dir/.yms/categories.yaml
// unless the file already exists. Reports whether it wrote the file.
func WriteDefaultCatalog(dir string) (bool, error) {
	path := filepath.Join(dir, dirName, catalogFile)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	file := CatalogFile{Categories: make(map[string]CategoryEntry)}
	for _, c := range category.Defaults() {
		mutable := c.PrefixMutable
		file.Categories[c.Name] = CategoryEntry{
			Prefix:        c.Prefix,
			DigitWidth:    c.DigitWidth,
			Policy:        string(c.Policy),
			PrefixMutable: &mutable,
			Description:   c.Description,
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return false, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create .yms dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write catalog: %w", err)
	}
	return true, nil
}
