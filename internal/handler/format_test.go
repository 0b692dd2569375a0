package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$100.00", FormatMoney(100))
	assert.Equal(t, "$1,234,567.80", FormatMoney(1234567.8))
	assert.Equal(t, "$10,000,000,000.00", FormatMoney(10e9))
}
