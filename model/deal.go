package model

// DealCategory selects which NSE disclosure table a request targets.
type DealCategory string

const (
	BulkDeals  DealCategory = "bulk_deals"
	BlockDeals DealCategory = "block_deals"
)

// Canonical column names every provider schema is normalized into.
const (
	ColSymbol  = "SYMBOL"
	ColCompany = "COMPANY"
	ColClient  = "CLIENT"
	ColBuySell = "BUYSELL"
	ColQty     = "QTY"
	ColPrice   = "PRICE"
	ColDate    = "DATE"
)

// DealRecord is one normalized bulk/block deal disclosure row.
// Immutable once parsed.
type DealRecord struct {
	Symbol   string       `json:"symbol" mapstructure:"SYMBOL"`
	Company  string       `json:"company" mapstructure:"COMPANY"`
	Client   string       `json:"client" mapstructure:"CLIENT"`
	BuySell  string       `json:"buySell" mapstructure:"BUYSELL"`
	Quantity int64        `json:"quantity" mapstructure:"QTY"`
	Price    float64      `json:"price" mapstructure:"PRICE"`
	Date     string       `json:"date" mapstructure:"DATE"`
	Category DealCategory `json:"category" mapstructure:"-"`
}

// NSEDealsEnvelope covers the shapes the NSE deals endpoint is known to
// return: either a bare array of row objects or an object wrapping the rows
// under one of several keys (see DealRowKeys).
type NSEDealsEnvelope struct {
	Data         []map[string]any `json:"data"`
	DataAlt      []map[string]any `json:"Data"`
	Results      []map[string]any `json:"results"`
	BulkDeals    []map[string]any `json:"bulkDeals"`
	BlockDeals   []map[string]any `json:"blockDeals"`
	Deals        []map[string]any `json:"deals"`
	BulkDealData []map[string]any `json:"bulkDealData"`
	Records      []map[string]any `json:"records"`
}

// Rows returns the first non-empty row list in the envelope.
func (e *NSEDealsEnvelope) Rows() []map[string]any {
	for _, rows := range [][]map[string]any{
		e.Data, e.DataAlt, e.Results, e.BulkDeals,
		e.BlockDeals, e.Deals, e.BulkDealData, e.Records,
	} {
		if len(rows) > 0 {
			return rows
		}
	}
	return nil
}
