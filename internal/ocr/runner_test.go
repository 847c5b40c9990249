package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		out, errb, err := execRunner{}.Run(context.Background(), "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(out))
		assert.Empty(t, errb)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, _, err := execRunner{}.Run(context.Background(), "no-such-binary-idv")
		assert.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 100)
	assert.Equal(t, long, truncate(long, 100))
	assert.Equal(t, long[:10]+"...(truncated)", truncate(long, 10))
}
