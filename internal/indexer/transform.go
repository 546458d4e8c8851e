package indexer

import (
	"time"

	"roleScope/internal/chain"
	"roleScope/internal/model"
)

func buildRawEvent(event chain.ContractEvent, ingestedAt time.Time) model.RawContractEvent {
	topics := make([]string, len(event.Topic))
	copy(topics, event.Topic)

	return model.RawContractEvent{
		ID:         event.ID,
		ContractID: event.ContractID,
		LedgerSeq:  event.Ledger,
		ClosedAt:   event.LedgerClosedAt,
		TxHash:     event.TxHash,
		Topics:     topics,
		Value:      event.Value,
		IngestedAt: ingestedAt.UTC().Format(time.RFC3339Nano),
	}
}
