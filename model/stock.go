package model

// Action is the per-category institutional stance on a stock.
type Action string

const (
	ActionBuy     Action = "buy"
	ActionSell    Action = "sell"
	ActionNeutral Action = "neutral"
)

// FlowSignal is the combined FII/DII read for one stock.
type FlowSignal string

const (
	FlowBothBuy   FlowSignal = "BOTH BUY"
	FlowFiiBuy    FlowSignal = "FII BUY"
	FlowDiiBuy    FlowSignal = "DII BUY"
	FlowBothSell  FlowSignal = "BOTH SELL"
	FlowBulkBlock FlowSignal = "BULK/BLOCK"
	FlowSell      FlowSignal = "SELL"
)

// InstitutionalStock is the folded per-symbol view of all deals in the
// window. FiiCash and DiiCash are independent last-seen-wins slots.
type InstitutionalStock struct {
	Symbol  string `json:"symbol" bson:"symbol"`
	Name    string `json:"name" bson:"name"`
	FiiCash Action `json:"fiiCash" bson:"fiiCash"`
	DiiCash Action `json:"diiCash" bson:"diiCash"`
}

// EnrichedStock is the final record handed to the reporting layer: the
// institutional view plus the technical snapshot and the flow signal.
// Built once per run, read-only afterwards.
type EnrichedStock struct {
	InstitutionalStock `bson:",inline"`
	TechnicalSnapshot  `bson:",inline"`
	InstSignal         FlowSignal `json:"instSignal" bson:"instSignal"`
}
