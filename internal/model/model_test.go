package model

import "testing"

func TestEventTypeIDSuffix(t *testing.T) {
	cases := map[EventType]string{
		EventRoleGranted:                "granted",
		EventRoleRevoked:                "revoked",
		EventRoleAdminChanged:           "admin-changed",
		EventAdminTransferInitiated:     "admin-transfer-initiated",
		EventAdminTransferCompleted:     "admin-transfer-completed",
		EventAdminRenounced:             "admin-renounced",
		EventOwnershipTransferStarted:   "ownership-started",
		EventOwnershipTransferCompleted: "ownership-completed",
		EventOwnershipRenounced:         "ownership-renounced",
		EventType("bogus"):              "unknown",
	}
	for eventType, want := range cases {
		if got := eventType.IDSuffix(); got != want {
			t.Fatalf("%s suffix mismatch: %q != %q", eventType, got, want)
		}
	}
}

func TestEventTypeCapability(t *testing.T) {
	if EventRoleGranted.Capability() != CapabilityAccessControl {
		t.Fatalf("role event capability mismatch")
	}
	if EventAdminRenounced.Capability() != CapabilityAccessControl {
		t.Fatalf("admin event capability mismatch")
	}
	if EventOwnershipRenounced.Capability() != CapabilityOwnable {
		t.Fatalf("ownership event capability mismatch")
	}
}

func TestCombineCapability(t *testing.T) {
	if got := CombineCapability(CapabilityAccessControl, CapabilityAccessControl); got != CapabilityAccessControl {
		t.Fatalf("same capability widened: %v", got)
	}
	if got := CombineCapability(CapabilityAccessControl, CapabilityOwnable); got != CapabilityCombined {
		t.Fatalf("mixed capability not widened: %v", got)
	}
	if got := CombineCapability(CapabilityCombined, CapabilityAccessControl); got != CapabilityCombined {
		t.Fatalf("combined capability narrowed: %v", got)
	}
	if got := CombineCapability(CapabilityOwnable, ""); got != CapabilityOwnable {
		t.Fatalf("empty incoming changed capability: %v", got)
	}
}

func TestMembershipID(t *testing.T) {
	got := MembershipID("CCONTRACT", "minter", "GACCOUNT")
	if got != "CCONTRACT-minter-GACCOUNT" {
		t.Fatalf("membership id mismatch: %q", got)
	}
}
