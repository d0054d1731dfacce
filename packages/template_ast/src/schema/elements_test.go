package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementSet(t *testing.T) {
	t.Run("should match names case-insensitively", func(t *testing.T) {
		set := NewElementSet("br", "clipPath")
		assert.True(t, set.Has("BR"))
		assert.True(t, set.Has("clippath"))
		assert.False(t, set.Has("div"))
	})

	t.Run("should be safe to query when nil", func(t *testing.T) {
		var set *ElementSet
		assert.False(t, set.Has("br"))
	})

	t.Run("should accept added names", func(t *testing.T) {
		set := NewElementSet()
		set.Add("custom-void")
		assert.True(t, set.Has("custom-void"))
		assert.Len(t, set.Names(), 1)
	})
}

func TestDefaults(t *testing.T) {
	t.Run("should contain the HTML void elements", func(t *testing.T) {
		void := DefaultVoidElements()
		for _, name := range []string{"br", "hr", "img", "input", "meta"} {
			assert.True(t, void.Has(name), name)
		}
		assert.False(t, void.Has("div"))
	})

	t.Run("should contain the self-closable SVG elements", func(t *testing.T) {
		svg := DefaultSvgElements()
		for _, name := range []string{"svg", "path", "circle", "clipPath"} {
			assert.True(t, svg.Has(name), name)
		}
		assert.False(t, svg.Has("template"))
	})
}
