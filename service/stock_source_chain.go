package service

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/krishnateja08/FII-DII-Pulse/client"
	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
)

const munafaMaxStocks = 20

// StockSource is one provider in the deal-source chain.
type StockSource interface {
	Name() string
	Fetch(ctx context.Context) ([]model.InstitutionalStock, string, error)
}

// StockSourceChain tries providers in fixed priority order; the first
// non-empty result wins. The last source is static, so the chain never
// comes back empty and the pipeline never aborts for lack of data.
type StockSourceChain struct {
	sources []StockSource
}

func NewStockSourceChain(sources ...StockSource) *StockSourceChain {
	return &StockSourceChain{sources: sources}
}

// Fetch returns the winning provider's stocks, its label and the window
// label (empty when the winner is not window-scoped).
func (c *StockSourceChain) Fetch(ctx context.Context) ([]model.InstitutionalStock, string, string) {
	for _, source := range c.sources {
		stocks, window, err := source.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Str("source", source.Name()).Msg("deal source failed")
			continue
		}
		if len(stocks) == 0 {
			log.Info().Str("source", source.Name()).Msg("deal source empty")
			continue
		}
		log.Info().Str("source", source.Name()).Int("stocks", len(stocks)).Msg("deal source selected")
		return stocks, source.Name(), window
	}
	// Unreachable with the static source configured last.
	return nil, "", ""
}

// --- Source 1: NSE deals API + classifier ---

type NseDealSource struct {
	deals      DealService
	classifier *Classifier
}

func NewNseDealSource(deals DealService, classifier *Classifier) *NseDealSource {
	return &NseDealSource{deals: deals, classifier: classifier}
}

func (s *NseDealSource) Name() string { return "NSE Bulk Deals API" }

func (s *NseDealSource) Fetch(ctx context.Context) ([]model.InstitutionalStock, string, error) {
	deals, window, err := s.deals.FetchWindowDeals(ctx)
	if err != nil {
		return nil, window, err
	}
	stocks := s.classifier.Classify(deals)
	if len(stocks) == 0 {
		return nil, window, customerrors.ErrEmptySource
	}
	return stocks, window, nil
}

// --- Source 2: MunafaSutra HTML scrape ---

type MunafaSource struct {
	client *client.MunafaClient
}

func NewMunafaSource(c *client.MunafaClient) *MunafaSource {
	return &MunafaSource{client: c}
}

func (s *MunafaSource) Name() string { return "MunafaSutra" }

func (s *MunafaSource) Fetch(ctx context.Context) ([]model.InstitutionalStock, string, error) {
	page, err := s.client.GetFiiDiiPage(ctx)
	if err != nil {
		return nil, "", err
	}
	stocks, err := ParseMunafaPage(page)
	return stocks, "", err
}

// ParseMunafaPage recovers symbol and display name from anchors linking to
// per-stock detail pages and infers buy/sell from a literal "bought" in the
// surrounding table row. Intentionally coarse: FII and DII get the same
// stance because the page does not separate them.
func ParseMunafaPage(page []byte) ([]model.InstitutionalStock, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	var stocks []model.InstitutionalStock
	doc.Find(`a[href*="/nse/stock/"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		segments := strings.Split(strings.TrimRight(href, "/"), "/")
		symbol := segments[len(segments)-1]
		name := strings.TrimSpace(a.Text())
		if symbol == "" || name == "" {
			return true
		}

		row := a.Closest("tr")
		if row.Length() == 0 {
			return true
		}
		rowText := strings.ToLower(row.Find("td").Text())

		action := model.ActionSell
		if strings.Contains(rowText, "bought") {
			action = model.ActionBuy
		}
		stocks = append(stocks, model.InstitutionalStock{
			Symbol:  symbol + ".NS",
			Name:    name,
			FiiCash: action,
			DiiCash: action,
		})
		return len(stocks) < munafaMaxStocks
	})

	return stocks, nil
}

// --- Source 3: static fallback ---

type StaticSource struct {
	stocks []model.InstitutionalStock
}

func NewStaticSource(cfg *model.MarketConfig) *StaticSource {
	return &StaticSource{stocks: cfg.FallbackStocks}
}

func (s *StaticSource) Name() string { return "Fallback (Known Institutional Stocks)" }

func (s *StaticSource) Fetch(ctx context.Context) ([]model.InstitutionalStock, string, error) {
	out := make([]model.InstitutionalStock, len(s.stocks))
	copy(out, s.stocks)
	return out, "", nil
}
