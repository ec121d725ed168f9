package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"gitlab.com/tozd/go/errors"
)

// FileName is the state file written at the root of every generated project.
const FileName = ".init-cpp-proj.json"

// FileState records what the generator wrote for a single file.
type FileState struct {
	SHA256      string    `json:"sha256"`       // Hex digest of the content as written
	GeneratedAt time.Time `json:"generated_at"` // When the file was last written by the generator
}

// Options is the subset of generation options worth remembering for later runs.
type Options struct {
	Name        string `json:"name"`
	CXXStandard int    `json:"cxx_standard"`
	ProjectType string `json:"project_type"`
	Tests       bool   `json:"tests"`
}

// State is the persisted record of a project's scaffolding. Paths are
// slash-separated and relative to the project root.
type State struct {
	Version  string               `json:"version"`  // Generator version that last touched the project
	Options  Options              `json:"options"`  // Options of the most recent run
	Files    map[string]FileState `json:"files"`    // Generated files keyed by relative path
	Packages []string             `json:"packages"` // OS packages installed on behalf of this project
}

// New returns an empty, initialized state.
func New() *State {
	return &State{Files: make(map[string]FileState)}
}

// Path returns the state file location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// LoadState loads the state file from path.
// A missing or unreadable file yields an empty state, since a project may
// predate the generator or have had the file deleted.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("No state at %s: %v", path, err)
		return New()
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		logger.Warn("Ignoring corrupt state file %s: %v", path, err)
		return New()
	}

	// JSON null leaves the map nil
	if st.Files == nil {
		st.Files = make(map[string]FileState)
	}
	return &st
}

// SaveState writes st to path as indented JSON.
func SaveState(path string, st *State) error {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errors.Errorf("marshal state: %w", err)
	}
	file = append(file, '\n')

	logger.Debug("Writing state to %s", path)
	if err := os.WriteFile(path, file, 0o644); err != nil {
		return errors.Errorf("write state file %s: %w", path, err)
	}
	return nil
}

// Record stores the checksum of content for rel.
func (st *State) Record(rel string, content []byte, at time.Time) {
	st.Files[filepath.ToSlash(rel)] = FileState{
		SHA256:      Checksum(content),
		GeneratedAt: at.UTC(),
	}
}

// AddPackages merges installed packages into the state, keeping the list sorted and unique.
func (st *State) AddPackages(pkgs ...string) {
	seen := make(map[string]bool, len(st.Packages))
	for _, p := range st.Packages {
		seen[p] = true
	}
	for _, p := range pkgs {
		if !seen[p] {
			st.Packages = append(st.Packages, p)
			seen[p] = true
		}
	}
	sort.Strings(st.Packages)
}

// Checksum is the hex sha256 of content.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
