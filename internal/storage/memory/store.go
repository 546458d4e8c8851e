package memory

import (
	"context"
	"sync"

	"roleScope/internal/model"
)

// Store is an in-memory implementation of storage.Store, used by tests and
// the project command's dry-run mode.
type Store struct {
	mu          sync.Mutex
	events      map[string]model.DomainEvent
	memberships map[string]model.RoleMembership
	ownerships  map[string]model.ContractOwnership
	metadata    map[string]model.ContractMetadata
}

func NewStore() *Store {
	return &Store{
		events:      make(map[string]model.DomainEvent),
		memberships: make(map[string]model.RoleMembership),
		ownerships:  make(map[string]model.ContractOwnership),
		metadata:    make(map[string]model.ContractMetadata),
	}
}

func (s *Store) UpsertDomainEvent(_ context.Context, event model.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return nil
}

func (s *Store) UpsertRoleMembership(_ context.Context, membership model.RoleMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membership.ID] = membership
	return nil
}

func (s *Store) DeleteRoleMembership(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.memberships, id)
	return nil
}

func (s *Store) UpsertContractOwnership(_ context.Context, ownership model.ContractOwnership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerships[ownership.ID] = ownership
	return nil
}

func (s *Store) DeleteContractOwnership(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ownerships, id)
	return nil
}

func (s *Store) GetContractMetadata(_ context.Context, id string) (model.ContractMetadata, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metadata[id]
	return meta, ok, nil
}

func (s *Store) UpsertContractMetadata(_ context.Context, meta model.ContractMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata[meta.ID] = meta
	return nil
}

// DomainEvent returns a stored canonical event by id.
func (s *Store) DomainEvent(id string) (model.DomainEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	return event, ok
}

// RoleMembership returns a stored membership by id.
func (s *Store) RoleMembership(id string) (model.RoleMembership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	membership, ok := s.memberships[id]
	return membership, ok
}

// ContractOwnership returns a stored ownership by id.
func (s *Store) ContractOwnership(id string) (model.ContractOwnership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ownership, ok := s.ownerships[id]
	return ownership, ok
}

// ContractMetadata returns stored metadata by id.
func (s *Store) ContractMetadata(id string) (model.ContractMetadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metadata[id]
	return meta, ok
}

// Counts returns the number of stored events, memberships and ownerships.
func (s *Store) Counts() (events, memberships, ownerships int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events), len(s.memberships), len(s.ownerships)
}
