// Package cmake configures and builds a generated project.
package cmake

import (
	"context"
	"path/filepath"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell"
	"gitlab.com/tozd/go/errors"
)

// BuildDir is the out-of-source build directory, relative to the project root.
const BuildDir = "build"

// ErrCMakeMissing is returned when cmake is not installed.
var ErrCMakeMissing = errors.New("cmake is not installed")

// Generator picks the -G value: the configured one, else Ninja when it is
// installed, else CMake's platform default (empty).
func Generator(r shell.Runner, configured string) string {
	if configured != "" {
		return configured
	}
	if shell.Has(r, "ninja") {
		return "Ninja"
	}
	return ""
}

// Configure runs cmake -S dir -B dir/build.
func Configure(ctx context.Context, r shell.Runner, dir, generator string) error {
	if !shell.Has(r, "cmake") {
		return ErrCMakeMissing
	}
	args := []string{"-S", dir, "-B", filepath.Join(dir, BuildDir)}
	if generator != "" {
		args = append(args, "-G", generator)
	}

	logger.Info("Configuring %s", dir)
	out, err := r.Run(ctx, dir, "cmake", args...)
	logger.Debug("cmake output:\n%s", out)
	if err != nil {
		return errors.Errorf("cmake configure: %w\nOutput: %s", err, out)
	}
	return nil
}

// Build runs cmake --build dir/build. The project must have been configured.
func Build(ctx context.Context, r shell.Runner, dir string) error {
	if !shell.Has(r, "cmake") {
		return ErrCMakeMissing
	}

	logger.Info("Building %s", dir)
	out, err := r.Run(ctx, dir, "cmake", "--build", filepath.Join(dir, BuildDir))
	logger.Debug("cmake output:\n%s", out)
	if err != nil {
		return errors.Errorf("cmake build: %w\nOutput: %s", err, out)
	}
	return nil
}
