package extract

import (
	"roleScope/internal/model"
	"roleScope/internal/scval"
)

// ownership_transfer_started: single name topic, payload map
// {old_owner, new_owner, live_until_ledger}, all required.
func extractOwnershipTransferStarted(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 1 {
		return nil, false
	}
	oldOwner, ok := payloadAddress(payload, "old_owner")
	if !ok {
		return nil, false
	}
	newOwner, ok := payloadAddress(payload, "new_owner")
	if !ok {
		return nil, false
	}
	liveUntil, ok := payloadLedgerSeq(payload, "live_until_ledger")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventOwnershipTransferStarted)
	event.Admin = oldOwner
	event.Account = newOwner
	event.LiveUntilLedger = &liveUntil
	return event, true
}

// ownership_transfer_completed: single name topic, payload map
// {new_owner}. The previous owner is not emitted.
func extractOwnershipTransferCompleted(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 1 {
		return nil, false
	}
	newOwner, ok := payloadAddress(payload, "new_owner")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventOwnershipTransferCompleted)
	event.Account = newOwner
	return event, true
}

// ownership_renounced: single name topic, payload map {old_owner}.
func extractOwnershipRenounced(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 1 {
		return nil, false
	}
	oldOwner, ok := payloadAddress(payload, "old_owner")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventOwnershipRenounced)
	event.Account = oldOwner
	return event, true
}
