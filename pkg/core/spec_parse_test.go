package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndicatorSpec(t *testing.T) {
	spec, err := ParseIndicatorSpec("native:SMA:window=20")
	require.NoError(t, err)
	assert.Equal(t, Native, spec.Library)
	assert.Equal(t, "SMA", spec.Name)
	assert.Equal(t, "SMA(20)", spec.DisplayName())

	spec, err = ParseIndicatorSpec("talib:BBANDS:timeperiod=20,nbdevup=2.5,matype=0")
	require.NoError(t, err)
	assert.Equal(t, Params{
		{Name: "timeperiod", Value: 20},
		{Name: "nbdevup", Value: 2.5},
		{Name: "matype", Value: 0},
	}, spec.Params)

	spec, err = ParseIndicatorSpec("pta:vwap:anchor=D,offset=true")
	require.NoError(t, err)
	assert.Equal(t, PandasTA, spec.Library)
	v, _ := spec.Params.Get("anchor")
	assert.Equal(t, "D", v)
	v, _ = spec.Params.Get("offset")
	assert.Equal(t, true, v)

	spec, err = ParseIndicatorSpec("native:OBV")
	require.NoError(t, err)
	assert.Empty(t, spec.Params)
}

func TestParseIndicatorSpec_Invalid(t *testing.T) {
	for _, s := range []string{"SMA", "native:", "native:SMA:window", "native:SMA:=3"} {
		_, err := ParseIndicatorSpec(s)
		assert.True(t, errors.Is(err, ErrInvalidValue), s)
	}

	_, err := ParseIndicatorSpec("nope:SMA")
	assert.Error(t, err)
}
