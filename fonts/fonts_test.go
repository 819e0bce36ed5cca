package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAndGet(t *testing.T) {
	LoadFontWithSize(Debug, goregular.TTF, 14)

	face := Debug.Get()
	assert.NotNil(t, face)
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		getFont(FontName("missing"))
	})
}
