package project

import (
	"os"
	"path/filepath"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/state"
	"gitlab.com/tozd/go/errors"
)

// ErrNoState is returned by Status for directories the generator never touched.
var ErrNoState = errors.New("no generator state found")

// Status compares the files recorded in dir's state file with what is on disk.
func Status(dir string) (*state.State, []state.FileReport, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, errors.Errorf("resolving %s: %w", dir, err)
	}
	if _, err := os.Stat(state.Path(abs)); err != nil {
		return nil, nil, errors.Errorf("%s: %w", abs, ErrNoState)
	}

	st := state.LoadState(state.Path(abs))
	reports, err := st.Check(abs)
	if err != nil {
		return st, nil, err
	}
	return st, reports, nil
}
