package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 62, Ratio("kitten", "sitting"))
	assert.Equal(t, 100, Ratio("josh allen", "josh allen"))
	assert.Equal(t, 0, Ratio("", "josh"))
	assert.Equal(t, 0, Ratio("", ""))
	assert.Equal(t, 97, Ratio("marquise brown", "marquise browne"))
	// lengths are counted in runes, not bytes
	assert.Equal(t, 67, Ratio("zoë", "zoe"))
	assert.Equal(t, 96, Ratio("gabriel daviss", "gabriel davis"))
}

func TestTokenSortRatio_IgnoresOrderAndCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, TokenSortRatio("Mahomes Patrick", "patrick mahomes"))
	assert.Equal(t, 100, TokenSortRatio("st. brown, amon-ra", "amon ra st brown"))
	assert.Less(t, TokenSortRatio("kevin smith", "jaylen smith"), 95)
}
