package catalog

import (
	"fmt"

	"github.com/StudioSol/set"
	"github.com/raykavin/vbtforge/pkg/core"
)

const (
	// AlphaCount is the number of formulaic alphas in the wqa101 family.
	AlphaCount = 101

	// Alpha categories.
	AlphaPriceVolume     = "Price-Volume"
	AlphaIndustryNeutral = "Industry Neutral"
	AlphaMarketCap       = "Market Cap"
)

// industryNeutralAlphas need industry classification data (IndNeutralize).
var industryNeutralAlphas = []int64{48, 58, 59, 63, 67, 69, 70, 76, 79, 80, 82, 87, 89, 90, 91, 93, 97, 100}

// marketCapAlphas need a market capitalisation series.
var marketCapAlphas = []int64{56}

// AlphaName formats the catalog name of alpha n, e.g. alpha007.
func AlphaName(n int64) string {
	return fmt.Sprintf("alpha%03d", n)
}

// AlphaIDs returns the ordered, de-duplicated ids of alphas in a category,
// or of every alpha when category is empty.
func AlphaIDs(category string) *set.LinkedHashSetINT64 {
	ids := set.NewLinkedHashSetINT64()
	for n := int64(1); n <= AlphaCount; n++ {
		if category == "" || alphaCategory(n) == category {
			ids.Add(n)
		}
	}
	return ids
}

func alphaCategory(n int64) string {
	for _, id := range marketCapAlphas {
		if id == n {
			return AlphaMarketCap
		}
	}
	for _, id := range industryNeutralAlphas {
		if id == n {
			return AlphaIndustryNeutral
		}
	}
	return AlphaPriceVolume
}

func init() {
	rows := make([]row, 0, AlphaCount)
	for n := range AlphaIDs("").Iter() {
		rows = append(rows, r(AlphaName(n), alphaCategory(n)))
	}
	register(core.WQA101, rows)
}
