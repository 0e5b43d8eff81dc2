package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	assert.InDelta(t, 44.99, DiscountedPrice(49.99), 0.001)
	assert.InDelta(t, 9.0, DiscountedPrice(10.0), 0.001)
	assert.InDelta(t, 0.0, DiscountedPrice(0), 0.001)
}
