package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nordpick/nordpick/pkg/types"
)

func TestStoreLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", CountriesFile)
	countries := []types.Country{
		{ID: "US1", Name: "United States", Code: "US"},
		{ID: "DE1", Name: "Germany", Code: "DE"},
	}

	if err := Store(path, countries); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	got, err := Load[types.Country](path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "US1" || got[1].Code != "DE" {
		t.Errorf("Load() = %v, want stored countries back", got)
	}
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Store(filepath.Join(dir, GroupsFile), []types.Group{{Identifier: "europe", Title: "Europe"}}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != GroupsFile {
		t.Errorf("cache dir contains %v, want only %s", entries, GroupsFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[types.Country](filepath.Join(t.TempDir(), CountriesFile)); err == nil {
		t.Error("Load() on a missing file succeeded, want error")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), TechnologiesFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load[types.Technology](path); err == nil {
		t.Error("Load() on a corrupt file succeeded, want error")
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	if err := Store(filepath.Join(dir, CountriesFile), []types.Country{{ID: "US1"}}); err != nil {
		t.Fatal(err)
	}

	// only one of the three files exists, the other two must not fail Clear
	if err := Clear(dir); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, CountriesFile)); !os.IsNotExist(err) {
		t.Errorf("Clear() left %s behind", CountriesFile)
	}

	// clearing an already empty dir is fine too
	if err := Clear(dir); err != nil {
		t.Fatalf("Clear() on empty dir error = %v", err)
	}
}
