package subjective

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DataFileName is the fixed name of the data file inside the config
// directory. The file is an export produced by the Subjective apps.
const DataFileName = ".subjective"

// Load reads the data file beneath configDir. The three failure modes are
// distinguished through LoadError.Kind so callers can tell "pull some data
// first" apart from real I/O or format problems.
func Load(configDir string) (*Subjective, error) {
	path := filepath.Join(configDir, DataFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Kind: LoadNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: LoadRead, Path: path, Err: err}
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Kind: LoadParse, Path: path, Err: err}
	}
	return data, nil
}

// Parse decodes a raw .subjective document. Malformed structure or
// out-of-range time fields fail the whole document; there is no per-record
// recovery.
func Parse(raw []byte) (*Subjective, error) {
	var data Subjective
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Save writes the whole aggregate to the data file beneath configDir,
// creating the directory if needed. The write goes through a temp file and
// rename so a partial write can't clobber a previously valid file.
func Save(data *Subjective, configDir string) error {
	path := filepath.Join(configDir, DataFileName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
