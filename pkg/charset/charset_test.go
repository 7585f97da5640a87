package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableSizes(t *testing.T) {
	// 128 code points, 0x1B is the escape
	assert.Equal(t, 127, BasicLen())
	assert.Equal(t, 10, ExtendedLen())
}

func TestTablesDisjoint(t *testing.T) {
	for r := range extended {
		assert.False(t, IsBasic(r), "%q is in both tables", r)
	}
}

func TestBasicCodesUnique(t *testing.T) {
	seen := make(map[byte]rune)
	for r, b := range basic {
		prev, ok := seen[b]
		assert.False(t, ok, "%q and %q share code %#x", r, prev, b)
		assert.True(t, b <= 0x7F)
		assert.NotEqual(t, Escape, b)
		seen[b] = r
	}
}

func TestIsBasic(t *testing.T) {
	for _, r := range "@£$¥èéùìòÇ\n\rØøÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./09:;<=>?¡AZÄÖÑÜ§¿azäöñüà" {
		assert.True(t, IsBasic(r), "%q", r)
		assert.False(t, IsExtended(r), "%q", r)
	}
	for _, r := range "€[]{}|^~\\\f漢😀ç`" {
		assert.False(t, IsBasic(r), "%q", r)
	}
}

func TestIsExtended(t *testing.T) {
	for _, r := range "€\f[\\]^{|}~" {
		assert.True(t, IsExtended(r), "%q", r)
	}
	for _, r := range "a漢 " {
		assert.False(t, IsExtended(r), "%q", r)
	}
}

func TestSeptets(t *testing.T) {
	tests := []struct {
		r  rune
		n  int
		ok bool
	}{
		{'a', 1, true},
		{'@', 1, true},
		{'€', 2, true},
		{'{', 2, true},
		{'漢', 0, false},
		{'😀', 0, false},
	}
	for _, tt := range tests {
		n, ok := Septets(tt.r)
		assert.Equal(t, tt.n, n, "%q", tt.r)
		assert.Equal(t, tt.ok, ok, "%q", tt.r)
	}
}

func TestCodes(t *testing.T) {
	b, ok := BasicCode('@')
	assert.True(t, ok)
	assert.Equal(t, byte(0x00), b)
	b, ok = BasicCode('à')
	assert.True(t, ok)
	assert.Equal(t, byte(0x7F), b)
	_, ok = BasicCode('€')
	assert.False(t, ok)

	b, ok = ExtendedCode('€')
	assert.True(t, ok)
	assert.Equal(t, byte(0x65), b)
	_, ok = ExtendedCode('a')
	assert.False(t, ok)
}
