package portfolio

import (
	"fmt"
	"math"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

// Category groups parameters the way the configurator tabs present them.
type Category string

const (
	Essential    Category = "essential"
	Advanced     Category = "advanced"
	Professional Category = "professional"
)

// Kind is the declared type of a parameter value.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindEnum
	KindNullableInt
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindNullableInt:
		return "integer or None"
	}
	return "float"
}

// Choice is one value of an enum parameter with its human label.
type Choice struct {
	Value string
	Label string
}

// Parameter is the declaration of one portfolio setting.
type Parameter struct {
	ID          string
	Category    Category
	Kind        Kind
	Default     any
	Min         *float64
	Max         *float64
	Optional    bool // NaN disables a float setting
	Choices     []Choice
	Arg         string // keyword of the portfolio constructor, empty when not passed
	Description string
}

func bound(v float64) *float64 {
	return &v
}

// Parameter ids referenced by the model.
const (
	InitCash          = "init_cash"
	Fees              = "fees"
	FixedFee          = "fixed_fee"
	Slippage          = "slippage"
	Size              = "size"
	SizeType          = "size_type"
	Direction         = "direction"
	Freq              = "freq"
	StopLoss          = "sl_stop"
	TakeProfit        = "tp_stop"
	TrailingStop      = "tsl_stop"
	StopLossMode      = "sl_mode"
	TakeProfitMode    = "tp_mode"
	StopLossTicks     = "sl_ticks"
	TakeProfitTicks   = "tp_ticks"
	StopLossDollars   = "sl_dollars"
	TakeProfitDollars = "tp_dollars"
	TickSize          = "tick_size"
	TickValue         = "tick_value"
	Leverage          = "leverage"
	Accumulate        = "accumulate"
	UponOpposite      = "upon_opposite_entry"
	AllowPartial      = "allow_partial"
	CashSharing       = "cash_sharing"
	MaxOrders         = "max_orders"
	Seed              = "seed"
	Log               = "log"
)

var stopModes = []Choice{
	{Value: "percent", Label: "Percent of initial cash"},
	{Value: "ticks", Label: "Ticks"},
	{Value: "dollars", Label: "Dollars"},
}

var registry = []Parameter{
	{ID: InitCash, Category: Essential, Kind: KindFloat, Default: 10000.0, Min: bound(100), Max: bound(1e9), Arg: "init_cash",
		Description: "Starting capital"},
	{ID: Fees, Category: Essential, Kind: KindFloat, Default: 0.0005, Min: bound(0), Max: bound(0.1), Arg: "fees",
		Description: "Proportional fee per order"},
	{ID: FixedFee, Category: Essential, Kind: KindFloat, Default: 0.0, Min: bound(0), Max: bound(1000), Arg: "fixed_fees",
		Description: "Fixed fee per order"},
	{ID: Slippage, Category: Essential, Kind: KindFloat, Default: 0.0005, Min: bound(0), Max: bound(0.1), Arg: "slippage",
		Description: "Proportional slippage per order"},
	{ID: Size, Category: Essential, Kind: KindFloat, Default: math.Inf(1), Min: bound(0), Arg: "size",
		Description: "Order size, interpreted by size_type"},
	{ID: SizeType, Category: Essential, Kind: KindEnum, Default: "amount", Arg: "size_type",
		Choices: []Choice{
			{Value: "amount", Label: "Amount of units"},
			{Value: "value", Label: "Cash value"},
			{Value: "percent", Label: "Percent of available resources"},
			{Value: "valuepercent", Label: "Percent of portfolio value"},
			{Value: "targetamount", Label: "Target amount"},
			{Value: "targetvalue", Label: "Target value"},
			{Value: "targetpercent", Label: "Target percent"},
		},
		Description: "How size is interpreted"},
	{ID: Direction, Category: Essential, Kind: KindEnum, Default: "longonly", Arg: "direction",
		Choices: []Choice{
			{Value: "longonly", Label: "Long only"},
			{Value: "shortonly", Label: "Short only"},
			{Value: "both", Label: "Long and short"},
		},
		Description: "Trade direction"},
	{ID: Freq, Category: Essential, Kind: KindEnum, Default: "5m", Arg: "freq",
		Choices: []Choice{
			{Value: "1m", Label: "1 minute"}, {Value: "5m", Label: "5 minutes"}, {Value: "15m", Label: "15 minutes"},
			{Value: "30m", Label: "30 minutes"}, {Value: "1h", Label: "1 hour"}, {Value: "4h", Label: "4 hours"},
			{Value: "1d", Label: "1 day"},
		},
		Description: "Bar frequency used for annualized statistics"},
	{ID: StopLoss, Category: Essential, Kind: KindFloat, Default: math.NaN(), Min: bound(0), Max: bound(1), Optional: true, Arg: "sl_stop",
		Description: "Stop-loss as a fraction of initial cash"},
	{ID: TakeProfit, Category: Essential, Kind: KindFloat, Default: math.NaN(), Min: bound(0), Max: bound(10), Optional: true, Arg: "tp_stop",
		Description: "Take-profit as a fraction of initial cash"},

	{ID: TrailingStop, Category: Advanced, Kind: KindFloat, Default: math.NaN(), Min: bound(0), Max: bound(1), Optional: true, Arg: "tsl_stop",
		Description: "Trailing stop as a fraction of price"},
	{ID: StopLossMode, Category: Advanced, Kind: KindEnum, Default: "percent", Choices: stopModes,
		Description: "Unit the stop-loss was entered in"},
	{ID: TakeProfitMode, Category: Advanced, Kind: KindEnum, Default: "percent", Choices: stopModes,
		Description: "Unit the take-profit was entered in"},
	{ID: StopLossTicks, Category: Advanced, Kind: KindFloat, Default: 0.0, Min: bound(0), Max: bound(100000),
		Description: "Stop-loss distance in ticks"},
	{ID: TakeProfitTicks, Category: Advanced, Kind: KindFloat, Default: 0.0, Min: bound(0), Max: bound(100000),
		Description: "Take-profit distance in ticks"},
	{ID: StopLossDollars, Category: Advanced, Kind: KindFloat, Default: 0.0, Min: bound(0),
		Description: "Stop-loss amount in account currency"},
	{ID: TakeProfitDollars, Category: Advanced, Kind: KindFloat, Default: 0.0, Min: bound(0),
		Description: "Take-profit amount in account currency"},
	{ID: TickSize, Category: Advanced, Kind: KindFloat, Default: 0.01, Min: bound(1e-8), Max: bound(1000),
		Description: "Minimum price increment"},
	{ID: TickValue, Category: Advanced, Kind: KindFloat, Default: 1.0, Min: bound(1e-8), Max: bound(100000),
		Description: "Currency value of one tick"},

	{ID: Leverage, Category: Professional, Kind: KindFloat, Default: 1.0, Min: bound(1), Max: bound(100), Arg: "leverage",
		Description: "Leverage applied to orders"},
	{ID: Accumulate, Category: Professional, Kind: KindBool, Default: false, Arg: "accumulate",
		Description: "Allow adding to an open position"},
	{ID: UponOpposite, Category: Professional, Kind: KindEnum, Default: "reversereduce", Arg: "upon_opposite_entry",
		Choices: []Choice{
			{Value: "ignore", Label: "Ignore"},
			{Value: "close", Label: "Close"},
			{Value: "closereduce", Label: "Close and reduce"},
			{Value: "reverse", Label: "Reverse"},
			{Value: "reversereduce", Label: "Reverse and reduce"},
		},
		Description: "Action on an opposite entry signal"},
	{ID: AllowPartial, Category: Professional, Kind: KindBool, Default: true, Arg: "allow_partial",
		Description: "Fill orders partially when cash is short"},
	{ID: CashSharing, Category: Professional, Kind: KindBool, Default: false, Arg: "cash_sharing",
		Description: "Share cash between columns"},
	{ID: MaxOrders, Category: Professional, Kind: KindNullableInt, Default: nil, Min: bound(1), Arg: "max_orders",
		Description: "Order records to preallocate, None for automatic"},
	{ID: Seed, Category: Professional, Kind: KindNullableInt, Default: nil, Min: bound(0), Arg: "seed",
		Description: "Random seed, None for random"},
	{ID: Log, Category: Professional, Kind: KindBool, Default: false, Arg: "log",
		Description: "Record order logs"},
}

var registryIndex = map[string]int{}

func init() {
	for i, p := range registry {
		registryIndex[p.ID] = i
	}
}

// Parameters returns every declared parameter in registry order.
func Parameters() []Parameter {
	return append([]Parameter(nil), registry...)
}

// ByCategory returns the parameters of one category in registry order.
func ByCategory(c Category) []Parameter {
	return lo.Filter(registry, func(p Parameter, _ int) bool {
		return p.Category == c
	})
}

// Lookup returns the declaration of a parameter id.
func Lookup(id string) (Parameter, error) {
	i, ok := registryIndex[id]
	if !ok {
		return Parameter{}, fmt.Errorf("%w: %q", core.ErrUnknownParameter, id)
	}
	return registry[i], nil
}

// Label returns the human label of an enum value, or the value itself.
func (p Parameter) Label(value string) string {
	for _, c := range p.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
