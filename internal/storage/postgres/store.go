package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roleScope/internal/model"
)

// Store provides Postgres persistence for canonical events and aggregates.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertDomainEvent inserts or replaces a canonical domain event. Ids are
// deterministic, so replays overwrite rather than duplicate.
func (s *Store) UpsertDomainEvent(ctx context.Context, event model.DomainEvent) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO domain_events (
			id, contract_id, event_type, block_height, event_ts, tx_hash, ledger_seq,
			role, account, admin, previous_admin_role, new_admin_role, live_until_ledger,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			contract_id = EXCLUDED.contract_id,
			event_type = EXCLUDED.event_type,
			block_height = EXCLUDED.block_height,
			event_ts = EXCLUDED.event_ts,
			tx_hash = EXCLUDED.tx_hash,
			ledger_seq = EXCLUDED.ledger_seq,
			role = EXCLUDED.role,
			account = EXCLUDED.account,
			admin = EXCLUDED.admin,
			previous_admin_role = EXCLUDED.previous_admin_role,
			new_admin_role = EXCLUDED.new_admin_role,
			live_until_ledger = EXCLUDED.live_until_ledger,
			updated_at = now()
	`,
		event.ID,
		event.Contract,
		string(event.Type),
		int64(event.BlockHeight),
		event.Timestamp,
		event.TxHash,
		int64(event.Ledger),
		nullIfEmpty(event.Role),
		event.Account,
		nullIfEmpty(event.Admin),
		event.PreviousAdminRole,
		nullIfEmpty(event.NewAdminRole),
		event.LiveUntilLedger,
	)
	return err
}

// UpsertRoleMembership inserts or replaces a role membership; the latest
// grant wins.
func (s *Store) UpsertRoleMembership(ctx context.Context, membership model.RoleMembership) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO role_memberships (
			id, contract_id, role, account, granted_by, granted_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			granted_by = EXCLUDED.granted_by,
			granted_at = EXCLUDED.granted_at,
			updated_at = now()
	`,
		membership.ID,
		membership.Contract,
		membership.Role,
		membership.Account,
		nullIfEmpty(membership.GrantedBy),
		membership.GrantedAt,
	)
	return err
}

func (s *Store) DeleteRoleMembership(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM role_memberships WHERE id=$1`, id)
	return err
}

// UpsertContractOwnership inserts or replaces the ownership row for a
// contract.
func (s *Store) UpsertContractOwnership(ctx context.Context, ownership model.ContractOwnership) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contract_ownerships (
			id, contract_id, owner, previous_owner, transferred_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			previous_owner = EXCLUDED.previous_owner,
			transferred_at = EXCLUDED.transferred_at,
			updated_at = now()
	`,
		ownership.ID,
		ownership.Contract,
		ownership.Owner,
		nullIfEmpty(ownership.PreviousOwner),
		ownership.TransferredAt,
	)
	return err
}

func (s *Store) DeleteContractOwnership(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM contract_ownerships WHERE id=$1`, id)
	return err
}

func (s *Store) GetContractMetadata(ctx context.Context, id string) (model.ContractMetadata, bool, error) {
	var meta model.ContractMetadata
	var capability string
	row := s.pool.QueryRow(ctx, `
		SELECT id, contract_id, type, first_seen_at, last_activity_at
		FROM contract_metadata WHERE id=$1
	`, id)
	if err := row.Scan(&meta.ID, &meta.Contract, &capability, &meta.FirstSeenAt, &meta.LastActivityAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ContractMetadata{}, false, nil
		}
		return model.ContractMetadata{}, false, err
	}
	meta.Type = model.Capability(capability)
	return meta, true, nil
}

// UpsertContractMetadata inserts or updates contract metadata. The type
// only widens and first_seen/last_activity stay monotonic, so replays in
// any order converge.
func (s *Store) UpsertContractMetadata(ctx context.Context, meta model.ContractMetadata) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contract_metadata (
			id, contract_id, type, first_seen_at, last_activity_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			type = CASE
				WHEN contract_metadata.type = EXCLUDED.type THEN contract_metadata.type
				ELSE 'ACCESS_CONTROL_OWNABLE'
			END,
			first_seen_at = LEAST(contract_metadata.first_seen_at, EXCLUDED.first_seen_at),
			last_activity_at = GREATEST(contract_metadata.last_activity_at, EXCLUDED.last_activity_at),
			updated_at = now()
	`,
		meta.ID,
		meta.Contract,
		string(meta.Type),
		meta.FirstSeenAt,
		meta.LastActivityAt,
	)
	return err
}

// LoadState returns last_processed_ledger for a name.
func (s *Store) LoadState(ctx context.Context, name string) (uint32, bool, error) {
	if name == "" {
		return 0, false, fmt.Errorf("state name required")
	}
	var ledger uint32
	row := s.pool.QueryRow(ctx, `SELECT last_processed_ledger FROM indexer_state WHERE name=$1`, name)
	if err := row.Scan(&ledger); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return ledger, true, nil
}

// SaveState upserts last_processed_ledger for a name.
func (s *Store) SaveState(ctx context.Context, name string, ledger uint32) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO indexer_state (name, last_processed_ledger, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET last_processed_ledger = EXCLUDED.last_processed_ledger, updated_at = now()
	`, name, int64(ledger))
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
