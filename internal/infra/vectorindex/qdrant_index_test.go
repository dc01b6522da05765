package vectorindex

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPointID_IsStableUUID(t *testing.T) {
	first := pointID("a1b2c3d4e5f60718")

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.Equal(t, first, pointID("a1b2c3d4e5f60718"))
	assert.NotEqual(t, first, pointID("another-tip"))
}
