package service

import (
	"strings"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

// Classifier maps free-text client names onto FII/DII categories and folds
// deal rows into per-symbol institutional stances. The keyword lists are
// injected data tables, not code.
type Classifier struct {
	fiiKeywords []string
	diiKeywords []string
}

func NewClassifier(cfg *model.MarketConfig) *Classifier {
	return &Classifier{
		fiiKeywords: upperAll(cfg.FiiKeywords),
		diiKeywords: upperAll(cfg.DiiKeywords),
	}
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

// Classify folds deals into one InstitutionalStock per symbol. Fold order
// is the provider's row order and is significant: later rows overwrite the
// matching category slot (last-seen-wins, FII and DII independently).
// Deals matching neither keyword list keep both slots neutral; those stocks
// are retained so the flow signal can bucket them as BULK/BLOCK.
func (c *Classifier) Classify(deals []model.DealRecord) []model.InstitutionalStock {
	stocks := make(map[string]*model.InstitutionalStock, len(deals))
	order := make([]string, 0, len(deals))

	for _, deal := range deals {
		sym := strings.ToUpper(strings.TrimSpace(deal.Symbol))
		clientName := strings.ToUpper(strings.TrimSpace(deal.Client))
		if sym == "" || clientName == "" {
			continue
		}

		isFii := matchesAny(clientName, c.fiiKeywords)
		isDii := matchesAny(clientName, c.diiKeywords)

		action := model.ActionSell
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(deal.BuySell)), "B") {
			action = model.ActionBuy
		}

		stock, seen := stocks[sym]
		if !seen {
			name := strings.TrimSpace(deal.Company)
			if name == "" {
				name = sym
			}
			stock = &model.InstitutionalStock{
				Symbol:  sym + ".NS",
				Name:    name,
				FiiCash: model.ActionNeutral,
				DiiCash: model.ActionNeutral,
			}
			stocks[sym] = stock
			order = append(order, sym)
		}

		if isFii {
			stock.FiiCash = action
		}
		if isDii {
			stock.DiiCash = action
		}
	}

	result := make([]model.InstitutionalStock, 0, len(order))
	for _, sym := range order {
		result = append(result, *stocks[sym])
	}
	return result
}

func matchesAny(clientName string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(clientName, kw) {
			return true
		}
	}
	return false
}

// FlowSignal collapses the two stance slots into one label. Mixed
// buy/sell combinations land in the generic SELL bucket; stocks whose
// deals matched neither keyword list surface as BULK/BLOCK.
func FlowSignal(s model.InstitutionalStock) model.FlowSignal {
	fiiBuy := s.FiiCash == model.ActionBuy
	diiBuy := s.DiiCash == model.ActionBuy
	switch {
	case fiiBuy && diiBuy:
		return model.FlowBothBuy
	case fiiBuy:
		return model.FlowFiiBuy
	case diiBuy:
		return model.FlowDiiBuy
	case s.FiiCash == model.ActionSell && s.DiiCash == model.ActionSell:
		return model.FlowBothSell
	case s.FiiCash == model.ActionNeutral && s.DiiCash == model.ActionNeutral:
		return model.FlowBulkBlock
	default:
		return model.FlowSell
	}
}
