package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New("1000")
	require.NoError(t, err)
	assert.Equal(t, "1000", m.String())

	_, err = New("12.3.4")
	assert.Error(t, err)

	_, err = New("-5")
	assert.Error(t, err)
}

func TestTimesTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		total    string
		expected int64
	}{
		{"2500", 2},
		{"999", 0},
		{"1000", 1},
		{"1999.99", 1},
		{"3000", 3},
	}

	threshold := MustNew("1000")
	for _, tc := range tests {
		quotient, err := MustNew(tc.total).Times(threshold)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, quotient, "%s / 1000", tc.total)
	}
}

func TestTimesZeroDivisor(t *testing.T) {
	_, err := MustNew("100").Times(Zero)
	assert.Error(t, err)
}

func TestComparison(t *testing.T) {
	assert.True(t, MustNew("1000").GreaterThanOrEqual(MustNew("1000")))
	assert.True(t, MustNew("1000.01").GreaterThanOrEqual(MustNew("1000")))
	assert.False(t, MustNew("999.99").GreaterThanOrEqual(MustNew("1000")))
	assert.Equal(t, 0, MustNew("10.50").Cmp(MustNew("10.5")))
}

func TestArithmetic(t *testing.T) {
	assert.True(t, MustNew("10.25").Add(MustNew("0.75")).Equal(MustNew("11")))
	assert.True(t, MustNew("10").Multiply(3).Equal(MustNew("30")))
	assert.True(t, Zero.IsZero())
}
