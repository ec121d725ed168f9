package shell

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	r := NewExec()

	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello; echo oops >&2")
	require.NoError(t, err)
	assert.Equal(t, "hello\noops\n", string(out))

	out, err = r.Run(context.Background(), "", "sh", "-c", "echo bad; exit 3")
	assert.ErrorContains(t, err, "sh failed")
	assert.Equal(t, "bad\n", string(out))
}

func TestExecLookPath(t *testing.T) {
	r := NewExec()

	_, err := r.LookPath("definitely-not-a-real-binary-4242")
	assert.ErrorContains(t, err, "not found on PATH")
	assert.False(t, Has(r, "definitely-not-a-real-binary-4242"))
}
