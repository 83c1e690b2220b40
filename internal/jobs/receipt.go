package jobs

import "github.com/txproof/txproof-api/internal/chain"

// PriceDetail is the resolved historical price attached to a receipt.
// Source identifies which upstream produced the quote so downstream
// consumers can flag heuristic pricing (e.g. the stablecoin peg shortcut).
type PriceDetail struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Source          string `json:"source"`
	BucketTimestamp int64  `json:"bucketTimestamp"`
}

// Result is the finished receipt payload. It is stored verbatim as the
// job's result and served to pollers; for a completed job it never changes
// on re-read, which is the reproducibility guarantee advertised externally.
type Result struct {
	ChainID int64  `json:"chainId"`
	TxHash  string `json:"txHash"`

	Envelope   chain.Envelope        `json:"envelope"`
	Type       chain.TransactionType `json:"type"`
	Confidence chain.Confidence      `json:"confidence"`
	Evidence   []string              `json:"evidence"`

	Status         uint64  `json:"status"`
	BlockNumber    uint64  `json:"blockNumber"`
	BlockTimestamp uint64  `json:"blockTimestamp"`
	From           string  `json:"from"`
	To             *string `json:"to"`
	ValueWei       string  `json:"valueWei"`
	GasUsed        uint64  `json:"gasUsed"`
	FeeWei         string  `json:"feeWei"`

	Price    *PriceDetail `json:"price"`
	Warnings []string     `json:"warnings,omitempty"`
}
