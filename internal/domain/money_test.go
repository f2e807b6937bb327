package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.00, RoundMoney(10.0))
	assert.Equal(t, 10.00, RoundMoney(10.004))
	assert.Equal(t, 10.01, RoundMoney(10.006))
	assert.Equal(t, 0.01, RoundMoney(0.005))
	assert.Equal(t, 133.45, RoundMoney(123.45+10.00))
}

func TestPercentOf(t *testing.T) {
	// 5% of a $200 order is exactly $10.00
	assert.Equal(t, 10.00, PercentOf(200, 5))
	// half-cents round up
	assert.Equal(t, 0.05, PercentOf(0.90, 5))
	assert.Equal(t, 0.00, PercentOf(200, 0))
}
