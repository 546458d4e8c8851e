package storage

import (
	"context"

	"roleScope/internal/model"
)

// RawStorage defines a sink for raw contract event batches.
type RawStorage interface {
	PutEventBatch(events []model.RawContractEvent) error
}

// Store persists canonical domain events and the derived aggregates. All
// writes are keyed by deterministic ids, so every upsert is
// create-or-replace and replays converge to the same state.
type Store interface {
	UpsertDomainEvent(ctx context.Context, event model.DomainEvent) error
	UpsertRoleMembership(ctx context.Context, membership model.RoleMembership) error
	DeleteRoleMembership(ctx context.Context, id string) error
	UpsertContractOwnership(ctx context.Context, ownership model.ContractOwnership) error
	DeleteContractOwnership(ctx context.Context, id string) error
	GetContractMetadata(ctx context.Context, id string) (model.ContractMetadata, bool, error)
	UpsertContractMetadata(ctx context.Context, meta model.ContractMetadata) error
}
