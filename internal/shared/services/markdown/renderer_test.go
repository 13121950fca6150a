package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	t.Run("empty notes render to empty string", func(t *testing.T) {
		out, err := r.ToHTMLSanitized("   ")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("emphasis and hard wraps", func(t *testing.T) {
		out, err := r.ToHTMLSanitized("**Refrain** twice\nthen verse 2")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>Refrain</strong>")
		assert.Contains(t, out, "<br")
	})

	t.Run("scripts are stripped", func(t *testing.T) {
		out, err := r.ToHTMLSanitized("hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.Contains(t, out, "hello")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		out, err := r.ToHTMLSanitized("[score](https://example.org/score.pdf)")
		require.NoError(t, err)
		assert.Contains(t, out, `rel="nofollow"`)
	})
}
