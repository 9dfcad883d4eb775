package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

func testClassifier() *Classifier {
	return NewClassifier(&model.MarketConfig{
		FiiKeywords: []string{"FII", "FPI", "FOREIGN", "GOLDMAN SACHS", "MORGAN STANLEY"},
		DiiKeywords: []string{"MUTUAL FUND", "LIFE INSURANCE", "SBI", "HDFC MUTUAL"},
	})
}

func deal(symbol, client, buySell string) model.DealRecord {
	return model.DealRecord{
		Symbol:  symbol,
		Company: symbol + " Ltd",
		Client:  client,
		BuySell: buySell,
	}
}

func TestClassifyKeywordMatching(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name    string
		client  string
		buySell string
		fii     model.Action
		dii     model.Action
	}{
		{"domestic fund buys", "HDFC MUTUAL FUND", "BUY", model.ActionNeutral, model.ActionBuy},
		{"foreign desk sells", "GOLDMAN SACHS INVESTMENTS MAURITIUS", "SELL", model.ActionSell, model.ActionNeutral},
		{"case insensitive", "morgan stanley asia", "buy", model.ActionBuy, model.ActionNeutral},
		{"buy prefix variants", "SBI LIFE", "B", model.ActionNeutral, model.ActionBuy},
		{"unmatched client stays neutral", "RAKESH JHUNJHUNWALA", "BUY", model.ActionNeutral, model.ActionNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stocks := c.Classify([]model.DealRecord{deal("INFY", tt.client, tt.buySell)})
			require.Len(t, stocks, 1)
			assert.Equal(t, "INFY.NS", stocks[0].Symbol)
			assert.Equal(t, tt.fii, stocks[0].FiiCash)
			assert.Equal(t, tt.dii, stocks[0].DiiCash)
		})
	}
}

func TestClassifyBothListsMatch(t *testing.T) {
	c := NewClassifier(&model.MarketConfig{
		FiiKeywords: []string{"OMNI CAPITAL"},
		DiiKeywords: []string{"OMNI CAPITAL"},
	})

	stocks := c.Classify([]model.DealRecord{deal("TCS", "OMNI CAPITAL PARTNERS", "BUY")})
	require.Len(t, stocks, 1)
	assert.Equal(t, model.ActionBuy, stocks[0].FiiCash)
	assert.Equal(t, model.ActionBuy, stocks[0].DiiCash)
}

func TestClassifyLastSeenWins(t *testing.T) {
	c := testClassifier()

	stocks := c.Classify([]model.DealRecord{
		deal("RELIANCE", "FOREIGN PORTFOLIO FUND A", "BUY"),
		deal("RELIANCE", "FOREIGN PORTFOLIO FUND B", "SELL"),
	})
	require.Len(t, stocks, 1)
	assert.Equal(t, model.ActionSell, stocks[0].FiiCash)
	assert.Equal(t, model.ActionNeutral, stocks[0].DiiCash)
}

func TestClassifyIndependentSlots(t *testing.T) {
	c := testClassifier()

	// FII and DII stances accumulate independently on the same symbol.
	stocks := c.Classify([]model.DealRecord{
		deal("WIPRO", "FII NOMINEES", "SELL"),
		deal("WIPRO", "LIFE INSURANCE CORPORATION", "BUY"),
	})
	require.Len(t, stocks, 1)
	assert.Equal(t, model.ActionSell, stocks[0].FiiCash)
	assert.Equal(t, model.ActionBuy, stocks[0].DiiCash)
}

func TestClassifyPreservesFirstSeenOrder(t *testing.T) {
	c := testClassifier()

	stocks := c.Classify([]model.DealRecord{
		deal("TATAMOTORS", "FII ONE", "BUY"),
		deal("INFY", "SBI MF", "BUY"),
		deal("TATAMOTORS", "FII TWO", "SELL"),
	})
	require.Len(t, stocks, 2)
	assert.Equal(t, "TATAMOTORS.NS", stocks[0].Symbol)
	assert.Equal(t, "INFY.NS", stocks[1].Symbol)
}

func TestClassifySkipsBlankRows(t *testing.T) {
	c := testClassifier()

	stocks := c.Classify([]model.DealRecord{
		deal("", "FII ONE", "BUY"),
		deal("INFY", "  ", "BUY"),
	})
	assert.Empty(t, stocks)
}

func TestFlowSignal(t *testing.T) {
	tests := []struct {
		name     string
		fii, dii model.Action
		expected model.FlowSignal
	}{
		{"both buy", model.ActionBuy, model.ActionBuy, model.FlowBothBuy},
		{"fii only", model.ActionBuy, model.ActionNeutral, model.FlowFiiBuy},
		{"fii buys against dii sell", model.ActionBuy, model.ActionSell, model.FlowFiiBuy},
		{"dii only", model.ActionNeutral, model.ActionBuy, model.FlowDiiBuy},
		{"dii buys against fii sell", model.ActionSell, model.ActionBuy, model.FlowDiiBuy},
		{"both sell", model.ActionSell, model.ActionSell, model.FlowBothSell},
		{"no institutional match", model.ActionNeutral, model.ActionNeutral, model.FlowBulkBlock},
		{"fii exit", model.ActionSell, model.ActionNeutral, model.FlowSell},
		{"dii exit", model.ActionNeutral, model.ActionSell, model.FlowSell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := FlowSignal(model.InstitutionalStock{FiiCash: tt.fii, DiiCash: tt.dii})
			assert.Equal(t, tt.expected, signal)
		})
	}
}
