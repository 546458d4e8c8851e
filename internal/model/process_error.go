package model

// ProcessError records an extraction failure for a raw event line.
type ProcessError struct {
	EventID    string `json:"event_id"`
	ContractID string `json:"contract_id"`
	LedgerSeq  uint32 `json:"ledger_seq"`
	TxHash     string `json:"tx_hash"`
	Error      string `json:"error"`
}
