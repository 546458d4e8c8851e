package extract

import (
	"roleScope/internal/model"
	"roleScope/internal/scval"
)

// admin_transfer_initiated: topics [name, current_admin], payload map
// {new_admin, live_until_ledger}. Both payload fields are required.
func extractAdminTransferInitiated(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 2 {
		return nil, false
	}
	currentAdmin, ok := topicAddress(topics, 1)
	if !ok {
		return nil, false
	}
	newAdmin, ok := payloadAddress(payload, "new_admin")
	if !ok {
		return nil, false
	}
	liveUntil, ok := payloadLedgerSeq(payload, "live_until_ledger")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventAdminTransferInitiated)
	event.Admin = currentAdmin
	event.Account = newAdmin
	event.LiveUntilLedger = &liveUntil
	return event, true
}

// admin_transfer_completed: topics [name, new_admin], payload map
// {previous_admin}, required.
func extractAdminTransferCompleted(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 2 {
		return nil, false
	}
	newAdmin, ok := topicAddress(topics, 1)
	if !ok {
		return nil, false
	}
	previousAdmin, ok := payloadAddress(payload, "previous_admin")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventAdminTransferCompleted)
	event.Account = newAdmin
	event.Admin = previousAdmin
	return event, true
}

// admin_renounced: topics [name, admin], no payload.
func extractAdminRenounced(topics []scval.Value, _ scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 2 {
		return nil, false
	}
	admin, ok := topicAddress(topics, 1)
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventAdminRenounced)
	event.Account = admin
	return event, true
}
