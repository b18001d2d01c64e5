// Package importer turns raw broker CSV exports into trade records. Column
// layouts vary per broker, so detection is heuristic: header names are
// matched against fixed alias lists instead of per-broker parsers.
package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

// Alias lists are matched by substring against lower-cased header tokens,
// first matching column wins. Broker compatibility depends on this exact
// order, do not "improve" it.
var (
	dateAliases       = []string{"date", "time", "open time", "entry time", "trade date"}
	symbolAliases     = []string{"symbol", "instrument", "ticker"}
	sideAliases       = []string{"side", "type", "direction"}
	entryAliases      = []string{"entry", "open price"}
	exitAliases       = []string{"exit", "close price"}
	quantityAliases   = []string{"quantity", "volume", "lots"}
	pnlAliases        = []string{"pnl", "profit", "p/l"}
	commissionAliases = []string{"commission", "fee"}
)

const defaultDurationMin = 60

// Result is a per-batch import outcome. Partial success is normal: rows that
// fail stay in Errors while the rest land in Trades.
type Result struct {
	Trades  []models.Trade `json:"trades"`
	Errors  []string       `json:"errors"`
	Success bool           `json:"success"`
	Count   int            `json:"count"`
}

type columns struct {
	date       int
	symbol     int
	side       int
	entryPrice int
	exitPrice  int
	quantity   int
	pnl        int
	commission int
}

// Normalize parses raw CSV text (header line first, comma-delimited,
// optionally double-quoted) into trade records. Trade IDs are left empty;
// the store assigns them on insert.
func Normalize(csvText string) Result {
	var res Result

	lines := strings.Split(strings.ReplaceAll(csvText, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		res.Errors = append(res.Errors, "No valid trades found in CSV")
		return res
	}

	header := splitRow(strings.ToLower(lines[0]))
	cols := detectColumns(header)

	for i := 1; i < len(lines); i++ {
		values := splitRow(lines[i])
		if len(values) < 3 {
			continue
		}
		rowNum := i + 1
		trade, errMsg := parseRow(values, cols, rowNum)
		if errMsg != "" {
			res.Errors = append(res.Errors, errMsg)
			continue
		}
		res.Trades = append(res.Trades, trade)
	}

	res.Count = len(res.Trades)
	res.Success = res.Count > 0
	if res.Count == 0 && len(res.Errors) == 0 {
		res.Errors = append(res.Errors, "No valid trades found in CSV")
	}
	return res
}

func detectColumns(header []string) columns {
	return columns{
		date:       detectColumn(header, dateAliases),
		symbol:     detectColumn(header, symbolAliases),
		side:       detectColumn(header, sideAliases),
		entryPrice: detectColumn(header, entryAliases),
		exitPrice:  detectColumn(header, exitAliases),
		quantity:   detectColumn(header, quantityAliases),
		pnl:        detectColumn(header, pnlAliases),
		commission: detectColumn(header, commissionAliases),
	}
}

// detectColumn returns the first column whose header contains any alias,
// or -1 when nothing matches.
func detectColumn(header []string, aliases []string) int {
	for i, h := range header {
		for _, alias := range aliases {
			if strings.Contains(h, alias) {
				return i
			}
		}
	}
	return -1
}

// parseRow never lets a bad row abort the batch: anything unexpected is
// recovered and reported as a row-level error.
func parseRow(values []string, cols columns, rowNum int) (trade models.Trade, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			trade = models.Trade{}
			errMsg = fmt.Sprintf("Row %d: Failed to parse row", rowNum)
		}
	}()

	dateIdx := cols.date
	if dateIdx < 0 {
		dateIdx = 0
	}
	rawDate := fieldAt(values, dateIdx)
	date, ok := parseDate(rawDate)
	if !ok {
		return models.Trade{}, fmt.Sprintf("Row %d: Invalid date format %q", rowNum, rawDate)
	}

	symbol := fieldAt(values, cols.symbol)
	if cols.symbol < 0 && len(values) > 1 {
		symbol = values[1]
	}
	if symbol == "" {
		symbol = "UNKNOWN"
	}

	side := models.SideLong
	if raw := strings.ToLower(fieldAt(values, cols.side)); strings.Contains(raw, "sell") || strings.Contains(raw, "short") {
		side = models.SideShort
	}

	trade = models.Trade{
		Date:        date,
		Symbol:      strings.ToUpper(symbol),
		Side:        side,
		EntryPrice:  fieldDecimal(values, cols.entryPrice, decimal.Zero),
		ExitPrice:   fieldDecimal(values, cols.exitPrice, decimal.Zero),
		Quantity:    fieldDecimal(values, cols.quantity, decimal.NewFromInt(1)).Abs(),
		PnL:         fieldDecimal(values, cols.pnl, decimal.Zero),
		Commission:  fieldDecimal(values, cols.commission, decimal.Zero).Abs(),
		DurationMin: defaultDurationMin,
		Tags:        []string{},
		Mistakes:    []string{},
	}
	return trade, ""
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return out
}

func fieldAt(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}

// fieldDecimal coerces a numeric field, silently falling back to def on a
// missing column or unparseable value. Lenient on purpose: a malformed
// price becomes the default instead of failing the row.
func fieldDecimal(values []string, idx int, def decimal.Decimal) decimal.Decimal {
	raw := fieldAt(values, idx)
	if raw == "" {
		return def
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, " ", ""))
	if err != nil {
		return def
	}
	return d
}
