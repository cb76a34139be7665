package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/rs/xid"
)

var (
	// retrieve home directory or fail
	HomeDir = func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			gologger.Fatal().Msgf("Failed to get user home directory: %s", err)
		}
		return home
	}()

	DefaultDir = filepath.Join(HomeDir, ".config/nordpick/cache")
)

// fixed per-collection cache filenames, one JSON array each
const (
	CountriesFile    = "countries.json"
	TechnologiesFile = "technologies.json"
	GroupsFile       = "groups.json"
)

// Store writes a reference collection to disk. The write goes through a
// uniquely named temp file and a rename, so concurrent runs sharing a cache
// directory can only race whole files, never interleave partial writes.
func Store[T any](path string, records []T) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if !fileutil.FolderExists(dir) {
		if err := fileutil.CreateFolder(dir); err != nil {
			return err
		}
	}
	tmp := path + "." + xid.New().String()
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a previously stored collection. Callers treat any error as a
// cache miss and fall back to the network, so missing and corrupt files are
// equivalent here.
func Load[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Clear removes the cached reference collections from dir. Files that were
// never written are not an error.
func Clear(dir string) error {
	for _, name := range []string{CountriesFile, TechnologiesFile, GroupsFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
