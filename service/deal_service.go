package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	localCache "github.com/krishnateja08/FII-DII-Pulse/cache"
	"github.com/krishnateja08/FII-DII-Pulse/client"
	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
	"github.com/krishnateja08/FII-DII-Pulse/util"
)

// exactColumns maps every observed NSE header variant to the canonical
// schema. Canonical names map to themselves so normalization is idempotent.
var exactColumns = map[string]string{
	"BD_SYMBOL":      model.ColSymbol,
	"BD_SCRIP_NAME":  model.ColCompany,
	"BD_CLIENT_NAME": model.ColClient,
	"BD_BUY_SELL":    model.ColBuySell,
	"BD_QTY_TRD":     model.ColQty,
	"BD_TP_WATP":     model.ColPrice,
	"BD_DT_DATE":     model.ColDate,
	"SCRIP_NAME":     model.ColCompany,
	"CLIENT_NAME":    model.ColClient,
	"BUY_SELL":       model.ColBuySell,
	"QTY_TRD":        model.ColQty,
	"TRADE_PRICE":    model.ColPrice,
	"TRADE_DATE":     model.ColDate,
	"SYMBOL":         model.ColSymbol,
	"COMPANY":        model.ColCompany,
	"CLIENT":         model.ColClient,
	"BUYSELL":        model.ColBuySell,
	"QTY":            model.ColQty,
	"PRICE":          model.ColPrice,
	"DATE":           model.ColDate,
}

// DealService is the primary (authenticated API) deal provider.
type DealService interface {
	FetchWindowDeals(ctx context.Context) ([]model.DealRecord, string, error)
}

type DealServiceImpl struct {
	client   *client.NseClient
	calendar *util.TradingCalendar
}

func NewDealService(c *client.NseClient, calendar *util.TradingCalendar) DealService {
	return &DealServiceImpl{client: c, calendar: calendar}
}

// FetchWindowDeals pulls bulk and block deals for the current disclosure
// window, normalizes both schemas and merges them in provider row order.
// The second return is the window label.
func (s *DealServiceImpl) FetchWindowDeals(ctx context.Context) ([]model.DealRecord, string, error) {
	from, to, err := s.calendar.CurrentWindow(time.Now())
	if err != nil {
		log.Warn().Err(err).Msg("no disclosure window, skipping NSE source")
		return nil, "", customerrors.ErrNoTradingWindow
	}
	label := util.WindowLabel(from, to)

	if cached, found := localCache.DealWindowCache.Get(label); found {
		return cached.([]model.DealRecord), label, nil
	}

	if err := s.client.WarmUp(ctx); err != nil {
		return nil, label, err
	}

	fromStr := util.FormatNseDate(from)
	toStr := util.FormatNseDate(to)

	var deals []model.DealRecord
	for _, category := range []model.DealCategory{model.BulkDeals, model.BlockDeals} {
		resp, err := s.client.FetchDeals(ctx, category, fromStr, toStr)
		if err != nil {
			log.Warn().Err(err).Str("category", string(category)).Msg("deal category fetch failed")
			continue
		}

		rows, err := parseDealRows(resp.Body())
		if err != nil {
			log.Warn().Err(err).Str("category", string(category)).Msg("deal category parse failed")
			continue
		}
		if len(rows) == 0 {
			log.Info().Str("category", string(category)).Str("range", label).Msg("no deals in range")
			continue
		}

		parsed, err := normalizeRows(rows, category)
		if err != nil {
			// No resolvable CLIENT column means the schema is unusable
			// for classification; abandon the primary source entirely.
			return nil, label, err
		}
		log.Info().Str("category", string(category)).Int("rows", len(parsed)).Msg("deal rows added")
		deals = append(deals, parsed...)
	}

	if len(deals) == 0 {
		return nil, label, customerrors.ErrEmptySource
	}

	localCache.DealWindowCache.Set(label, deals, cache.DefaultExpiration)
	return deals, label, nil
}

// parseDealRows accepts whatever shape the endpoint felt like returning:
// a JSON array, a JSON envelope, or CSV.
func parseDealRows(body []byte) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var rows []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &rows); err != nil {
			return nil, err
		}
		return rows, nil
	case '{':
		var envelope model.NSEDealsEnvelope
		if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
			return nil, err
		}
		return envelope.Rows(), nil
	default:
		_, records, err := util.ReadRows(strings.NewReader(trimmed))
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			row := make(map[string]any, len(rec))
			for k, v := range rec {
				row[k] = v
			}
			rows = append(rows, row)
		}
		return rows, nil
	}
}

// NormalizeColumns resolves a raw column set to canonical names: the exact
// lookup table first, then substring rules. Each canonical target is
// claimed at most once so two raw columns never collide on one target.
// Unresolvable columns are left out of the result.
func NormalizeColumns(columns []string) map[string]string {
	rename := make(map[string]string, len(columns))
	claimed := make(map[string]bool, 7)

	claim := func(raw, target string) {
		if !claimed[target] {
			rename[raw] = target
			claimed[target] = true
		}
	}

	for _, c := range columns {
		cu := strings.ToUpper(strings.TrimSpace(c))
		if target, ok := exactColumns[cu]; ok {
			claim(c, target)
			continue
		}
		switch {
		// CLIENT checked before COMPANY so *_CLIENT_NAME never lands on COMPANY.
		case strings.Contains(cu, "CLIENT"):
			claim(c, model.ColClient)
		case strings.Contains(cu, "PARTY"):
			claim(c, model.ColClient)
		case strings.Contains(cu, "SYMBOL"):
			claim(c, model.ColSymbol)
		case strings.Contains(cu, "SCRIP_NAME"):
			claim(c, model.ColCompany)
		case strings.Contains(cu, "COMP"):
			claim(c, model.ColCompany)
		case strings.Contains(cu, "BUY_SELL"):
			claim(c, model.ColBuySell)
		case strings.Contains(cu, "QTY"):
			claim(c, model.ColQty)
		case strings.Contains(cu, "PRICE"):
			claim(c, model.ColPrice)
		}
	}
	return rename
}

func normalizeRows(rows []map[string]any, category model.DealCategory) ([]model.DealRecord, error) {
	columns := make([]string, 0, len(rows[0]))
	for c := range rows[0] {
		columns = append(columns, c)
	}
	rename := NormalizeColumns(columns)

	hasClient := false
	for _, target := range rename {
		if target == model.ColClient {
			hasClient = true
			break
		}
	}
	if !hasClient {
		return nil, customerrors.ErrClientColumnMissing
	}

	deals := make([]model.DealRecord, 0, len(rows))
	for _, row := range rows {
		canonical := make(map[string]any, len(rename))
		for raw, target := range rename {
			canonical[target] = cleanNumeric(target, row[raw])
		}

		var deal model.DealRecord
		if err := decodeDeal(canonical, &deal); err != nil {
			continue
		}
		deal.Symbol = strings.ToUpper(strings.TrimSpace(deal.Symbol))
		deal.Client = strings.TrimSpace(deal.Client)
		deal.Category = category
		// Rows without a resolvable symbol or client cannot be classified.
		if deal.Symbol == "" || deal.Client == "" {
			continue
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

// cleanNumeric strips the thousands separators NSE puts in CSV quantities
// so weakly-typed decoding can parse them.
func cleanNumeric(target string, v any) any {
	if target != model.ColQty && target != model.ColPrice {
		return v
	}
	if s, ok := v.(string); ok {
		s = strings.ReplaceAll(s, ",", "")
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return s
	}
	return v
}

func decodeDeal(canonical map[string]any, out *model.DealRecord) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(canonical)
}
