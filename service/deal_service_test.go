package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
)

func TestNormalizeColumnsExactSchema(t *testing.T) {
	rename := NormalizeColumns([]string{
		"BD_SYMBOL", "BD_SCRIP_NAME", "BD_CLIENT_NAME",
		"BD_BUY_SELL", "BD_QTY_TRD", "BD_TP_WATP", "BD_DT_DATE",
	})

	assert.Equal(t, map[string]string{
		"BD_SYMBOL":      model.ColSymbol,
		"BD_SCRIP_NAME":  model.ColCompany,
		"BD_CLIENT_NAME": model.ColClient,
		"BD_BUY_SELL":    model.ColBuySell,
		"BD_QTY_TRD":     model.ColQty,
		"BD_TP_WATP":     model.ColPrice,
		"BD_DT_DATE":     model.ColDate,
	}, rename)
}

func TestNormalizeColumnsFuzzyRules(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		expected string
	}{
		{"counterparty maps to client", "COUNTERPARTY_NM", model.ColClient},
		{"client beats company", "XX_CLIENT_COMPANY", model.ColClient},
		{"symbol variant", "STOCK_SYMBOOL", ""},
		{"symbol", "NSE_SYMBOL_CD", model.ColSymbol},
		{"company shorthand", "COMP_NM", model.ColCompany},
		{"buy sell", "DEAL_BUY_SELL_FLAG", model.ColBuySell},
		{"quantity", "TOTAL_QTY_SHARES", model.ColQty},
		{"price", "AVG_PRICE_RS", model.ColPrice},
		{"unknown dropped", "REMARKS", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rename := NormalizeColumns([]string{tt.column})
			if tt.expected == "" {
				assert.Empty(t, rename)
				return
			}
			assert.Equal(t, map[string]string{tt.column: tt.expected}, rename)
		})
	}
}

func TestNormalizeColumnsTargetClaimedOnce(t *testing.T) {
	// Two columns resolving to CLIENT: only the first wins the slot.
	rename := NormalizeColumns([]string{"BD_CLIENT_NAME", "COUNTERPARTY_NM"})

	assert.Equal(t, model.ColClient, rename["BD_CLIENT_NAME"])
	_, mapped := rename["COUNTERPARTY_NM"]
	assert.False(t, mapped)
}

func TestNormalizeColumnsIdempotent(t *testing.T) {
	canonical := []string{
		model.ColSymbol, model.ColCompany, model.ColClient,
		model.ColBuySell, model.ColQty, model.ColPrice, model.ColDate,
	}
	rename := NormalizeColumns(canonical)

	require.Len(t, rename, len(canonical))
	for _, c := range canonical {
		assert.Equal(t, c, rename[c])
	}
}

func TestParseDealRowsJSONArray(t *testing.T) {
	body := []byte(`[{"BD_SYMBOL":"INFY","BD_CLIENT_NAME":"SBI MF"}]`)

	rows, err := parseDealRows(body)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INFY", rows[0]["BD_SYMBOL"])
}

func TestParseDealRowsEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data key", `{"data":[{"SYMBOL":"TCS"}]}`},
		{"capitalized data key", `{"Data":[{"SYMBOL":"TCS"}]}`},
		{"bulk deals key", `{"bulkDeals":[{"SYMBOL":"TCS"}]}`},
		{"records key", `{"records":[{"SYMBOL":"TCS"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := parseDealRows([]byte(tt.body))
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "TCS", rows[0]["SYMBOL"])
		})
	}
}

func TestParseDealRowsCSV(t *testing.T) {
	body := []byte("BD_SYMBOL,BD_CLIENT_NAME,BD_QTY_TRD\nINFY,SBI MF,\"1,50,000\"\nTCS,FII DESK,2000\n")

	rows, err := parseDealRows(body)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1,50,000", rows[0]["BD_QTY_TRD"])
}

func TestParseDealRowsEmptyBody(t *testing.T) {
	rows, err := parseDealRows([]byte("   \n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNormalizeRows(t *testing.T) {
	rows := []map[string]any{
		{
			"BD_SYMBOL":      "infy",
			"BD_SCRIP_NAME":  "Infosys Limited",
			"BD_CLIENT_NAME": " SBI MUTUAL FUND ",
			"BD_BUY_SELL":    "BUY",
			"BD_QTY_TRD":     "1,50,000",
			"BD_TP_WATP":     "1520.55",
			"BD_DT_DATE":     "17-02-2026",
		},
		{
			// No symbol: dropped, not fatal.
			"BD_SYMBOL":      "",
			"BD_SCRIP_NAME":  "Ghost Ltd",
			"BD_CLIENT_NAME": "SOME FUND",
			"BD_BUY_SELL":    "SELL",
			"BD_QTY_TRD":     "10",
			"BD_TP_WATP":     "5",
			"BD_DT_DATE":     "17-02-2026",
		},
	}

	deals, err := normalizeRows(rows, model.BulkDeals)
	require.NoError(t, err)
	require.Len(t, deals, 1)

	d := deals[0]
	assert.Equal(t, "INFY", d.Symbol)
	assert.Equal(t, "Infosys Limited", d.Company)
	assert.Equal(t, "SBI MUTUAL FUND", d.Client)
	assert.Equal(t, "BUY", d.BuySell)
	assert.Equal(t, int64(150000), d.Quantity)
	assert.Equal(t, 1520.55, d.Price)
	assert.Equal(t, model.BulkDeals, d.Category)
}

func TestNormalizeRowsMissingClientColumn(t *testing.T) {
	rows := []map[string]any{
		{"BD_SYMBOL": "INFY", "BD_QTY_TRD": "100"},
	}

	_, err := normalizeRows(rows, model.BlockDeals)
	assert.ErrorIs(t, err, customerrors.ErrClientColumnMissing)
}

func TestNormalizeRowsEmptyNumericFields(t *testing.T) {
	rows := []map[string]any{
		{
			"BD_SYMBOL":      "INFY",
			"BD_CLIENT_NAME": "SBI MF",
			"BD_QTY_TRD":     "",
			"BD_TP_WATP":     " ",
		},
	}

	deals, err := normalizeRows(rows, model.BulkDeals)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Zero(t, deals[0].Quantity)
	assert.Zero(t, deals[0].Price)
}

func TestDealsEnvelopeRowsPrecedence(t *testing.T) {
	e := model.NSEDealsEnvelope{
		Records: []map[string]any{{"SYMBOL": "LAST"}},
		Data:    []map[string]any{{"SYMBOL": "FIRST"}},
	}
	rows := e.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "FIRST", rows[0]["SYMBOL"])
}
