package idgen_test

import (
	"testing"

	"github.com/Lutefd/travel-journal/internal/idgen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Next(t *testing.T) {
	gen := idgen.UUIDGenerator{}
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id := gen.Next()
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFunc_Next(t *testing.T) {
	n := 0
	gen := idgen.Func(func() string {
		n++
		return string(rune('a' + n - 1))
	})

	assert.Equal(t, "a", gen.Next())
	assert.Equal(t, "b", gen.Next())
}
