package model

import (
	"fmt"
	"time"
)

// Capability marks which access modules a contract has been seen using.
type Capability string

const (
	CapabilityAccessControl Capability = "ACCESS_CONTROL"
	CapabilityOwnable       Capability = "OWNABLE"
	CapabilityCombined      Capability = "ACCESS_CONTROL_OWNABLE"
)

// CombineCapability widens a contract capability monotonically. Once both
// modules have been observed the type stays combined.
func CombineCapability(existing, incoming Capability) Capability {
	if existing == incoming || incoming == "" {
		return existing
	}
	return CapabilityCombined
}

// RoleMembership records that an account currently holds a role on a
// contract. Overwritten on re-grant, removed on revoke.
type RoleMembership struct {
	ID        string    `json:"id"`
	Contract  string    `json:"contract"`
	Role      string    `json:"role"`
	Account   string    `json:"account"`
	GrantedBy string    `json:"granted_by,omitempty"`
	GrantedAt time.Time `json:"granted_at"`
}

// MembershipID builds the deterministic role membership key.
func MembershipID(contract, role, account string) string {
	return fmt.Sprintf("%s-%s-%s", contract, role, account)
}

// ContractOwnership records the current owner of a contract.
type ContractOwnership struct {
	ID            string    `json:"id"`
	Contract      string    `json:"contract"`
	Owner         string    `json:"owner"`
	PreviousOwner string    `json:"previous_owner,omitempty"`
	TransferredAt time.Time `json:"transferred_at"`
}

// ContractMetadata tracks which capabilities a contract exhibits and when
// it was last active.
type ContractMetadata struct {
	ID             string     `json:"id"`
	Contract       string     `json:"contract"`
	Type           Capability `json:"type"`
	FirstSeenAt    time.Time  `json:"first_seen_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
}
