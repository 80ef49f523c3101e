package core

import (
	"fmt"
	"strings"
)

// Library identifies one of the indicator providers the emitted scripts call into.
type Library string

const (
	Native    Library = "native"    // vectorbt built-in indicator factories
	TALib     Library = "talib"     // TA-Lib function API
	PandasTA  Library = "pandas_ta" // pandas-ta functions
	Technical Library = "technical" // freqtrade technical indicators and qtpylib
	TA        Library = "ta"        // the "ta" package indicator classes
	SMC       Library = "smc"       // smart money concepts
	WQA101    Library = "wqa101"    // WorldQuant 101 formulaic alphas
	TechCon   Library = "techcon"   // technical consensus evaluators
)

// Libraries lists every supported library in display order.
func Libraries() []Library {
	return []Library{Native, TALib, PandasTA, Technical, TA, SMC, WQA101, TechCon}
}

// ParseLibrary resolves a library name, accepting a few common spellings.
func ParseLibrary(name string) (Library, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native", "vbt", "vectorbt":
		return Native, nil
	case "talib", "ta-lib", "ta_lib":
		return TALib, nil
	case "pandas_ta", "pandas-ta", "pandasta", "pta":
		return PandasTA, nil
	case "technical":
		return Technical, nil
	case "ta":
		return TA, nil
	case "smc", "smartmoneyconcepts":
		return SMC, nil
	case "wqa101", "wqa", "alpha101":
		return WQA101, nil
	case "techcon", "consensus":
		return TechCon, nil
	}
	return "", fmt.Errorf("unknown library %q", name)
}

func (l Library) String() string {
	return string(l)
}
