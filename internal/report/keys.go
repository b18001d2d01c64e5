package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

func single(label string) []string { return []string{label} }

func BySymbol(t models.Trade) []string {
	return single(t.Symbol)
}

func ByWeekday(t models.Trade) []string {
	return single(t.Date.Weekday().String())
}

func ByWeek(t models.Trade) []string {
	_, week := t.Date.ISOWeek()
	return single(fmt.Sprintf("Week %d", week))
}

func ByMonth(t models.Trade) []string {
	return single(t.Date.Month().String())
}

// ByHour uses the time-of-day component when the import preserved one;
// date-only trades land in the 0:00 bucket.
func ByHour(t models.Trade) []string {
	return single(fmt.Sprintf("%d:00", t.Date.Hour()))
}

var durationBuckets = []struct {
	maxMin int
	label  string
}{
	{1, "Under 1 min"},
	{5, "1 to 5 min"},
	{15, "5 to 15 min"},
	{30, "15 to 30 min"},
	{60, "30 to 60 min"},
	{120, "1 to 2 hours"},
}

func ByDuration(t models.Trade) []string {
	for _, b := range durationBuckets {
		if t.DurationMin < b.maxMin {
			return single(b.label)
		}
	}
	return single("Over 2 hours")
}

var priceBuckets = []struct {
	max   decimal.Decimal
	label string
}{
	{decimal.NewFromInt(50), "$0 - $50"},
	{decimal.NewFromInt(100), "$50 - $100"},
	{decimal.NewFromInt(200), "$100 - $200"},
	{decimal.NewFromInt(500), "$200 - $500"},
}

func ByPrice(t models.Trade) []string {
	for _, b := range priceBuckets {
		if t.EntryPrice.LessThan(b.max) {
			return single(b.label)
		}
	}
	return single("$500+")
}

var volumeBuckets = []struct {
	max   decimal.Decimal
	label string
}{
	{decimal.NewFromFloat(0.1), "0 - 0.1"},
	{decimal.NewFromFloat(0.5), "0.1 - 0.5"},
	{decimal.NewFromInt(1), "0.5 - 1.0"},
	{decimal.NewFromInt(2), "1.0 - 2.0"},
}

func ByVolume(t models.Trade) []string {
	for _, b := range volumeBuckets {
		if t.Quantity.LessThan(b.max) {
			return single(b.label)
		}
	}
	return single("2.0+")
}

func BySetup(t models.Trade) []string {
	if t.Setup == "" {
		return single("No Setup")
	}
	return single(t.Setup)
}

// sectorTable maps well-known instruments; anything unlisted is treated
// as an equity.
var sectorTable = map[string]string{
	"EURUSD": "Forex", "GBPUSD": "Forex", "USDJPY": "Forex", "USDCAD": "Forex",
	"AUDUSD": "Forex", "NZDUSD": "Forex", "USDCHF": "Forex", "EURGBP": "Forex",
	"EURJPY": "Forex", "GBPJPY": "Forex",
	"BTCUSD": "Crypto", "ETHUSD": "Crypto", "BTCUSDT": "Crypto", "ETHUSDT": "Crypto",
	"SOLUSD": "Crypto", "XRPUSD": "Crypto",
	"US30": "Indices", "NAS100": "Indices", "SPX500": "Indices", "GER40": "Indices",
	"UK100": "Indices", "US500": "Indices", "JPN225": "Indices",
	"XAUUSD": "Commodities", "XAGUSD": "Commodities", "USOIL": "Commodities",
	"UKOIL": "Commodities", "NATGAS": "Commodities",
}

func BySector(t models.Trade) []string {
	if sector, ok := sectorTable[t.Symbol]; ok {
		return single(sector)
	}
	return single("Stocks")
}

func ByTag(t models.Trade) []string {
	return t.Tags
}

func ByMistake(t models.Trade) []string {
	return t.Mistakes
}

// categories maps report filter names to key functions, mirroring the
// filter tabs on the reports screen.
var categories = map[string]KeyFunc{
	"days":       ByWeekday,
	"weeks":      ByWeek,
	"months":     ByMonth,
	"time":       ByHour,
	"duration":   ByDuration,
	"price":      ByPrice,
	"volume":     ByVolume,
	"instrument": BySymbol,
	"sector":     BySector,
	"setups":     BySetup,
	"mistakes":   ByMistake,
	"tags":       ByTag,
}

// ForCategory resolves a report category name to its key function.
func ForCategory(name string) (KeyFunc, bool) {
	key, ok := categories[name]
	return key, ok
}

// CategoryNames lists the supported report categories.
func CategoryNames() []string {
	return []string{
		"days", "weeks", "months", "time", "duration", "price",
		"volume", "instrument", "sector", "setups", "mistakes", "tags",
	}
}
