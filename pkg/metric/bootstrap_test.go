package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrap(t *testing.T) {
	values := make([]float64, 200)
	for i := range values {
		values[i] = float64(i % 20)
	}

	interval := Bootstrap(values, Mean, 500, 0.95, 1)
	assert.Less(t, interval.Lower, 9.5)
	assert.Greater(t, interval.Upper, 9.5)
	assert.LessOrEqual(t, interval.Lower, interval.Mean)
	assert.GreaterOrEqual(t, interval.Upper, interval.Mean)
	assert.Greater(t, interval.StdDev, 0.0)

	assert.Equal(t, interval, Bootstrap(values, Mean, 500, 0.95, 1))
}

func TestBootstrap_Empty(t *testing.T) {
	assert.Equal(t, Interval{}, Bootstrap(nil, Mean, 100, 0.95, 1))
	assert.Equal(t, Interval{}, Bootstrap([]float64{1}, Mean, 0, 0.95, 1))
}

func TestBootstrap_Constant(t *testing.T) {
	interval := Bootstrap([]float64{3, 3, 3, 3}, Mean, 50, 0.9, 7)
	assert.Equal(t, 3.0, interval.Lower)
	assert.Equal(t, 3.0, interval.Upper)
	assert.Equal(t, 0.0, interval.StdDev)
}
