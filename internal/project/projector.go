package project

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"roleScope/internal/model"
	"roleScope/internal/storage"
)

// Projector applies canonical domain events to the derived aggregates:
// role memberships, contract ownerships and contract metadata. The store
// and logger are injected; Apply holds no other state.
type Projector struct {
	store  storage.Store
	logger *zap.Logger
}

func NewProjector(store storage.Store, logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{store: store, logger: logger}
}

// Apply persists the domain event and its aggregate side effects. Events
// for the same contract causally depend on earlier ones, so callers must
// apply them one at a time in ledger order. Only persistence failures
// propagate.
func (p *Projector) Apply(ctx context.Context, event model.DomainEvent) error {
	if err := p.store.UpsertDomainEvent(ctx, event); err != nil {
		return fmt.Errorf("store domain event %s: %w", event.ID, err)
	}

	switch event.Type {
	case model.EventRoleGranted:
		membership := model.RoleMembership{
			ID:        model.MembershipID(event.Contract, event.Role, event.Account),
			Contract:  event.Contract,
			Role:      event.Role,
			Account:   event.Account,
			GrantedBy: event.Admin,
			GrantedAt: event.Timestamp,
		}
		if err := p.store.UpsertRoleMembership(ctx, membership); err != nil {
			return fmt.Errorf("store role membership %s: %w", membership.ID, err)
		}
	case model.EventRoleRevoked:
		id := model.MembershipID(event.Contract, event.Role, event.Account)
		if err := p.store.DeleteRoleMembership(ctx, id); err != nil {
			return fmt.Errorf("delete role membership %s: %w", id, err)
		}
	case model.EventOwnershipTransferCompleted:
		ownership := model.ContractOwnership{
			ID:            event.Contract,
			Contract:      event.Contract,
			Owner:         event.Account,
			TransferredAt: event.Timestamp,
		}
		if err := p.store.UpsertContractOwnership(ctx, ownership); err != nil {
			return fmt.Errorf("store contract ownership %s: %w", ownership.ID, err)
		}
	case model.EventOwnershipRenounced:
		if err := p.store.DeleteContractOwnership(ctx, event.Contract); err != nil {
			return fmt.Errorf("delete contract ownership %s: %w", event.Contract, err)
		}
	}

	return p.touchMetadata(ctx, event)
}

func (p *Projector) touchMetadata(ctx context.Context, event model.DomainEvent) error {
	meta, found, err := p.store.GetContractMetadata(ctx, event.Contract)
	if err != nil {
		return fmt.Errorf("load contract metadata %s: %w", event.Contract, err)
	}

	capability := event.Type.Capability()
	if !found {
		meta = model.ContractMetadata{
			ID:             event.Contract,
			Contract:       event.Contract,
			Type:           capability,
			FirstSeenAt:    event.Timestamp,
			LastActivityAt: event.Timestamp,
		}
	} else {
		meta.Type = model.CombineCapability(meta.Type, capability)
		if event.Timestamp.After(meta.LastActivityAt) {
			meta.LastActivityAt = event.Timestamp
		}
	}

	if err := p.store.UpsertContractMetadata(ctx, meta); err != nil {
		return fmt.Errorf("store contract metadata %s: %w", meta.ID, err)
	}
	return nil
}
