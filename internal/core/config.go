package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Config is a joint placement of all agents: Config[i] is agent i's vertex.
type Config []VertexID

// Equal reports whether two Configs are element-wise identical.
func (c Config) Equal(other Config) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	copy(out, c)
	return out
}

// Digest returns a 64-bit hash of the Config for use as a map bucket key.
// It is not collision-free; callers must still compare with Equal.
func (c Config) Digest() uint64 {
	buf := make([]byte, 8*len(c))
	for i, v := range c {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return xxhash.Sum64(buf)
}
