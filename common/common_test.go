package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, -1, 1))
	assert.Equal(t, float32(-1), Clamp(float32(-3), -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestUnitToByte(t *testing.T) {
	assert.Equal(t, uint8(0), UnitToByte(-0.2))
	assert.Equal(t, uint8(128), UnitToByte(0.5))
	assert.Equal(t, uint8(255), UnitToByte(1.7))
}
