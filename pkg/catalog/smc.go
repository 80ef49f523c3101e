package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	register(core.SMC, []row{
		r("fvg", "Imbalance", "join_consecutive", 0),
		r("swing_highs_lows", "Structure", "swing_length", 50),
		r("bos_choch", "Structure", "swing_length", 50, "close_break", 1),
		r("ob", "Order Blocks", "swing_length", 50, "close_mitigation", 0),
		r("liquidity", "Liquidity", "swing_length", 50, "range_percent", 0.01),
		r("previous_high_low", "Levels", "time_frame", "1D"),
		r("sessions", "Sessions", "session", "London", "start_time", "", "end_time", "", "time_zone", "UTC"),
		r("retracements", "Structure", "swing_length", 50),
	})
}
