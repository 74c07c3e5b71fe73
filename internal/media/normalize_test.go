package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	base := "https://cdn.elgrace.com/media"

	t.Run("absolute url passes through with cache buster", func(t *testing.T) {
		got := NormalizeURL(base, "https://other.example.com/x.jpg", "42")
		assert.Equal(t, "https://other.example.com/x.jpg?v=42", got)
	})

	t.Run("relative url gets the base", func(t *testing.T) {
		got := NormalizeURL(base, "covers/x.jpg", "42")
		assert.Equal(t, "https://cdn.elgrace.com/media/covers/x.jpg?v=42", got)
	})

	t.Run("shared segment is not duplicated", func(t *testing.T) {
		got := NormalizeURL(base, "media/covers/x.jpg", "42")
		assert.Equal(t, "https://cdn.elgrace.com/media/covers/x.jpg?v=42", got)
	})

	t.Run("leading slash tolerated", func(t *testing.T) {
		got := NormalizeURL(base, "/covers/x.jpg", "")
		assert.Equal(t, "https://cdn.elgrace.com/media/covers/x.jpg", got)
	})

	t.Run("existing query appends with ampersand", func(t *testing.T) {
		got := NormalizeURL(base, "https://x.test/a.jpg?w=100", "7")
		assert.Equal(t, "https://x.test/a.jpg?w=100&v=7", got)
	})

	t.Run("empty version means no buster", func(t *testing.T) {
		got := NormalizeURL(base, "https://x.test/a.jpg", "")
		assert.Equal(t, "https://x.test/a.jpg", got)
	})

	t.Run("empty raw stays empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeURL(base, "", "3"))
	})
}
