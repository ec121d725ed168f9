package cmake

import (
	"context"
	"testing"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell/shelltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestGenerator(t *testing.T) {
	assert.Equal(t, "Unix Makefiles", Generator(shelltest.New("ninja"), "Unix Makefiles"))
	assert.Equal(t, "Ninja", Generator(shelltest.New("ninja"), ""))
	assert.Equal(t, "", Generator(shelltest.New(), ""))
}

func TestConfigureAndBuild(t *testing.T) {
	fake := shelltest.New("cmake")
	ctx := context.Background()

	require.NoError(t, Configure(ctx, fake, "/p", "Ninja"))
	require.NoError(t, Build(ctx, fake, "/p"))

	assert.Equal(t, []string{
		"cmake -S /p -B /p/build -G Ninja",
		"cmake --build /p/build",
	}, fake.Commands())
}

func TestConfigureDefaultGenerator(t *testing.T) {
	fake := shelltest.New("cmake")
	require.NoError(t, Configure(context.Background(), fake, "/p", ""))
	assert.Equal(t, []string{"cmake -S /p -B /p/build"}, fake.Commands())
}

func TestConfigureFailure(t *testing.T) {
	fake := shelltest.New("cmake").On("cmake -S /p -B /p/build", "CMake Error: no compiler", errors.New("exit status 1"))

	err := Configure(context.Background(), fake, "/p", "")
	assert.ErrorContains(t, err, "cmake configure")
	assert.ErrorContains(t, err, "no compiler")
}

func TestMissingCMake(t *testing.T) {
	fake := shelltest.New()
	assert.True(t, errors.Is(Configure(context.Background(), fake, "/p", ""), ErrCMakeMissing))
	assert.True(t, errors.Is(Build(context.Background(), fake, "/p"), ErrCMakeMissing))
}
