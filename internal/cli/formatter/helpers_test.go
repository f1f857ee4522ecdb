package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "999.50", Money(999.5))
	assert.Equal(t, "1,000.00", Money(1000))
	assert.Equal(t, "1,234,567.89", Money(1234567.89))
	assert.Equal(t, "-12,500.00", Money(-12500))
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+50.00", SignedMoney(50))
	assert.Equal(t, "-50.00", SignedMoney(-50))
	assert.Equal(t, "0.00", SignedMoney(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "28.6%", Percent(28.57))
	assert.Equal(t, "+100.0%", SignedPercent(100))
	assert.Equal(t, "-25.0%", SignedPercent(-25))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "toolongfo…", Truncate("toolongforthis", 10))
}
