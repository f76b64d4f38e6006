package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Анкара -> Стамбул
	d := HaversineDistance(39.9334, 32.8597, 41.0082, 28.9784)
	assert.InDelta(t, 348, d, 5)

	assert.Zero(t, HaversineDistance(41.0, 29.0, 41.0, 29.0))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.0001, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 12.35, RoundTo(12.3456, 2))
	assert.Equal(t, 349.4, RoundTo(349.42, 1))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "10.123456, 20.654321", FormatCoordinates(10.123456, 20.654321))
	assert.Equal(t, "-1.500000, 2.000000", FormatCoordinates(-1.5, 2))
}
