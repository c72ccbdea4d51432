package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigEqual(t *testing.T) {
	a := Config{0, 1, 2}
	b := Config{0, 1, 2}
	c := Config{0, 2, 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Config{0, 1}))
}

func TestConfigDigestRoundTrip(t *testing.T) {
	a := Config{4, 9, 1, 1, 0}
	b := a.Clone()

	assert.Equal(t, a.Digest(), b.Digest())
	assert.True(t, a.Equal(b))

	b[0] = 5
	assert.NotEqual(t, a.Digest(), b.Digest())
}
