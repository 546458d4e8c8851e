package model

import "time"

// EventType identifies one of the canonical domain event kinds.
type EventType string

const (
	EventRoleGranted                EventType = "RoleGranted"
	EventRoleRevoked                EventType = "RoleRevoked"
	EventRoleAdminChanged           EventType = "RoleAdminChanged"
	EventAdminTransferInitiated     EventType = "AdminTransferInitiated"
	EventAdminTransferCompleted     EventType = "AdminTransferCompleted"
	EventAdminRenounced             EventType = "AdminRenounced"
	EventOwnershipTransferStarted   EventType = "OwnershipTransferStarted"
	EventOwnershipTransferCompleted EventType = "OwnershipTransferCompleted"
	EventOwnershipRenounced         EventType = "OwnershipRenounced"
)

// IDSuffix returns the suffix appended to the raw event id to form the
// deterministic canonical event id.
func (t EventType) IDSuffix() string {
	switch t {
	case EventRoleGranted:
		return "granted"
	case EventRoleRevoked:
		return "revoked"
	case EventRoleAdminChanged:
		return "admin-changed"
	case EventAdminTransferInitiated:
		return "admin-transfer-initiated"
	case EventAdminTransferCompleted:
		return "admin-transfer-completed"
	case EventAdminRenounced:
		return "admin-renounced"
	case EventOwnershipTransferStarted:
		return "ownership-started"
	case EventOwnershipTransferCompleted:
		return "ownership-completed"
	case EventOwnershipRenounced:
		return "ownership-renounced"
	default:
		return "unknown"
	}
}

// Capability returns the contract capability implied by the event kind.
func (t EventType) Capability() Capability {
	switch t {
	case EventOwnershipTransferStarted, EventOwnershipTransferCompleted, EventOwnershipRenounced:
		return CapabilityOwnable
	default:
		return CapabilityAccessControl
	}
}

// DomainEvent is the validated, strongly typed record produced for one
// accepted raw contract event. It is append-only and never mutated.
type DomainEvent struct {
	ID          string    `json:"id"`
	Contract    string    `json:"contract"`
	Type        EventType `json:"type"`
	BlockHeight uint32    `json:"block_height"`
	Timestamp   time.Time `json:"timestamp"`
	TxHash      string    `json:"tx_hash"`
	Ledger      uint32    `json:"ledger"`

	Role              string  `json:"role,omitempty"`
	Account           string  `json:"account"`
	Admin             string  `json:"admin,omitempty"`
	PreviousAdminRole *string `json:"previous_admin_role,omitempty"`
	NewAdminRole      string  `json:"new_admin_role,omitempty"`
	LiveUntilLedger   *uint32 `json:"live_until_ledger,omitempty"`
}
