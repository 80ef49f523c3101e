package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParamsJSONKeepsOrder(t *testing.T) {
	var params Params
	err := json.Unmarshal([]byte(`{"slow": 26, "fast": 12, "alpha": 2.0, "mode": "sma"}`), &params)
	require.NoError(t, err)
	require.Equal(t, []string{"slow", "fast", "alpha", "mode"}, params.Names())

	slow, _ := params.Get("slow")
	require.Equal(t, 26, slow)
	alpha, _ := params.Get("alpha")
	require.Equal(t, 2.0, alpha)

	out, err := json.Marshal(params)
	require.NoError(t, err)
	require.Equal(t, `{"slow":26,"fast":12,"alpha":2.0,"mode":"sma"}`, string(out))
}

func TestParamsYAMLKeepsOrder(t *testing.T) {
	var spec IndicatorSpec
	err := yaml.Unmarshal([]byte("library: native\nname: MACD\nparams:\n  fast: 12\n  slow: 26\n  signal: 9\n"), &spec)
	require.NoError(t, err)
	require.Equal(t, "MACD(12,26,9)", spec.DisplayName())

	out, err := yaml.Marshal(spec.Params)
	require.NoError(t, err)
	require.Equal(t, "fast: 12\nslow: 26\nsignal: 9\n", string(out))
}

func TestDisplayName(t *testing.T) {
	spec := IndicatorSpec{Library: Native, Name: "SMA", Params: Params{{Name: "window", Value: 20}}}
	require.Equal(t, "SMA(20)", spec.DisplayName())

	spec = IndicatorSpec{Library: Native, Name: "RPROBNX"}
	require.Equal(t, "RPROBNX", spec.DisplayName())

	spec = IndicatorSpec{Library: Native, Name: "BBANDS"}.WithParam("window", 20).WithParam("alpha", 2.0)
	require.Equal(t, "BBANDS(20,2.0)", spec.DisplayName())
	require.Equal(t, "native:BBANDS(20,2.0)", spec.String())
}

func TestParamsWithDoesNotAlias(t *testing.T) {
	base := Params{{Name: "window", Value: 10}}
	changed := base.With("window", 30)

	v, _ := base.Get("window")
	require.Equal(t, 10, v)
	v, _ = changed.Get("window")
	require.Equal(t, 30, v)
}
