package extract

import (
	"roleScope/internal/model"
	"roleScope/internal/scval"
)

// role_granted: topics [name, role, account], payload map {caller}.
// caller is optional; a missing or invalid caller leaves Admin empty.
func extractRoleGranted(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	return extractRoleChange(topics, payload, env, model.EventRoleGranted)
}

// role_revoked shares role_granted's shape.
func extractRoleRevoked(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	return extractRoleChange(topics, payload, env, model.EventRoleRevoked)
}

func extractRoleChange(topics []scval.Value, payload scval.Value, env envelope, t model.EventType) (*model.DomainEvent, bool) {
	if len(topics) != 3 {
		return nil, false
	}
	role, ok := topicIdentifier(topics, 1)
	if !ok {
		return nil, false
	}
	account, ok := topicAddress(topics, 2)
	if !ok {
		return nil, false
	}

	event := baseEvent(env, t)
	event.Role = role
	event.Account = account
	if caller, ok := payloadAddress(payload, "caller"); ok {
		event.Admin = caller
	}
	return event, true
}

// role_admin_changed: topics [name, role], payload map
// {previous_admin_role, new_admin_role}. The previous role may be the
// empty string on a first-time assignment.
func extractRoleAdminChanged(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool) {
	if len(topics) != 2 {
		return nil, false
	}
	role, ok := topicIdentifier(topics, 1)
	if !ok {
		return nil, false
	}
	previous, ok := payloadAdminRole(payload, "previous_admin_role")
	if !ok {
		return nil, false
	}
	newRole, ok := payloadIdentifier(payload, "new_admin_role")
	if !ok {
		return nil, false
	}

	event := baseEvent(env, model.EventRoleAdminChanged)
	event.Role = role
	event.PreviousAdminRole = &previous
	event.NewAdminRole = newRole
	return event, true
}
