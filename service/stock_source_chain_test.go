package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

type stubSource struct {
	name   string
	stocks []model.InstitutionalStock
	window string
	err    error
	calls  int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]model.InstitutionalStock, string, error) {
	s.calls++
	return s.stocks, s.window, s.err
}

func stock(symbol string) model.InstitutionalStock {
	return model.InstitutionalStock{
		Symbol:  symbol + ".NS",
		Name:    symbol,
		FiiCash: model.ActionBuy,
		DiiCash: model.ActionNeutral,
	}
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	primary := &stubSource{name: "primary", stocks: []model.InstitutionalStock{stock("INFY")}, window: "10-02-2026 → 17-02-2026"}
	secondary := &stubSource{name: "secondary", stocks: []model.InstitutionalStock{stock("TCS")}}

	chain := NewStockSourceChain(primary, secondary)
	stocks, source, window := chain.Fetch(context.Background())

	require.Len(t, stocks, 1)
	assert.Equal(t, "INFY.NS", stocks[0].Symbol)
	assert.Equal(t, "primary", source)
	assert.Equal(t, "10-02-2026 → 17-02-2026", window)
	assert.Zero(t, secondary.calls)
}

func TestChainSkipsFailedAndEmptySources(t *testing.T) {
	failing := &stubSource{name: "failing", err: errors.New("blocked")}
	empty := &stubSource{name: "empty"}
	fallback := &stubSource{name: "fallback", stocks: []model.InstitutionalStock{stock("RELIANCE")}}

	chain := NewStockSourceChain(failing, empty, fallback)
	stocks, source, _ := chain.Fetch(context.Background())

	require.Len(t, stocks, 1)
	assert.Equal(t, "fallback", source)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestStaticSourceNeverEmpty(t *testing.T) {
	cfg := &model.MarketConfig{
		FallbackStocks: []model.InstitutionalStock{stock("HDFCBANK"), stock("ICICIBANK")},
	}
	src := NewStaticSource(cfg)

	stocks, window, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, stocks, 2)
	assert.Empty(t, window)

	// The fetch hands out a copy, not the config slice.
	stocks[0].Symbol = "MUTATED"
	again, _, _ := src.Fetch(context.Background())
	assert.Equal(t, "HDFCBANK.NS", again[0].Symbol)
}

func munafaRow(symbol, name, verdict string) string {
	return fmt.Sprintf(
		`<tr><td><a href="/nse/stock/%s">%s</a></td><td>%s by institutions</td></tr>`,
		symbol, name, verdict)
}

func TestParseMunafaPage(t *testing.T) {
	page := `<html><body><table>` +
		munafaRow("INFY", "Infosys", "bought") +
		munafaRow("TCS", "Tata Consultancy", "sold") +
		`</table></body></html>`

	stocks, err := ParseMunafaPage([]byte(page))
	require.NoError(t, err)
	require.Len(t, stocks, 2)

	assert.Equal(t, "INFY.NS", stocks[0].Symbol)
	assert.Equal(t, "Infosys", stocks[0].Name)
	assert.Equal(t, model.ActionBuy, stocks[0].FiiCash)
	assert.Equal(t, model.ActionBuy, stocks[0].DiiCash)

	assert.Equal(t, "TCS.NS", stocks[1].Symbol)
	assert.Equal(t, model.ActionSell, stocks[1].FiiCash)
}

func TestParseMunafaPageIgnoresOtherAnchors(t *testing.T) {
	page := `<html><body><table>` +
		`<tr><td><a href="/nse/FIIDII/">All deals</a></td><td>bought</td></tr>` +
		munafaRow("WIPRO", "Wipro", "bought") +
		`</table>` +
		`<a href="/nse/stock/ORPHAN">Orphan outside a row</a>` +
		`</body></html>`

	stocks, err := ParseMunafaPage([]byte(page))
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, "WIPRO.NS", stocks[0].Symbol)
}

func TestParseMunafaPageCapsResults(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><table>")
	for i := 0; i < 30; i++ {
		sb.WriteString(munafaRow(fmt.Sprintf("STK%d", i), fmt.Sprintf("Stock %d", i), "bought"))
	}
	sb.WriteString("</table></body></html>")

	stocks, err := ParseMunafaPage([]byte(sb.String()))
	require.NoError(t, err)
	assert.Len(t, stocks, munafaMaxStocks)
}
