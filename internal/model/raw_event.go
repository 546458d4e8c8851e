package model

// RawContractEvent is the normalized representation of a soroban-rpc
// contract event for storage. Topics and Value carry base64 XDR ScVals.
type RawContractEvent struct {
	ID         string   `json:"id"`
	ContractID string   `json:"contract_id"`
	LedgerSeq  uint32   `json:"ledger_seq"`
	ClosedAt   string   `json:"closed_at"`
	TxHash     string   `json:"tx_hash"`
	Topics     []string `json:"topics"`
	Value      string   `json:"value,omitempty"`
	IngestedAt string   `json:"ingested_at"`
}
