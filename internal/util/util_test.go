package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewULID()
		assert.Len(t, id, 26)
		assert.True(t, IsULID(id))
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestIsULID(t *testing.T) {
	assert.True(t, IsULID("01J9Z3V6Q0M5F4W1C8N2R7T3KX"))
	assert.False(t, IsULID(""))
	assert.False(t, IsULID("not-a-ulid"))
	assert.False(t, IsULID("01J9Z3V6Q0M5F4W1C8N2R7T3K"))
	assert.False(t, IsULID("01J9Z3V6Q0M5F4W1C8N2R7T3KU"))
}

func TestStringToNullString(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	ns := StringToNullString("advice")
	assert.True(t, ns.Valid)
	assert.Equal(t, "advice", ns.String)
}
