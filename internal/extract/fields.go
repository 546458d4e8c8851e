package extract

import (
	"math"

	"roleScope/internal/scval"
	"roleScope/internal/strval"
)

// Field helpers shared by the extraction rules. Each returns its value and
// whether it was present and valid; callers short-circuit to a decline on
// the first false.

func topicIdentifier(topics []scval.Value, i int) (string, bool) {
	if i >= len(topics) {
		return "", false
	}
	s, ok := topics[i].AsString()
	if !ok || !strval.ValidateIdentifier(s) {
		return "", false
	}
	return s, true
}

func topicAddress(topics []scval.Value, i int) (string, bool) {
	if i >= len(topics) {
		return "", false
	}
	s, ok := topics[i].AsString()
	if !ok || !strval.ValidateAddress(s) {
		return "", false
	}
	return s, true
}

func payloadAddress(payload scval.Value, key string) (string, bool) {
	v, ok := payload.MapGet(key)
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok || !strval.ValidateAddress(s) {
		return "", false
	}
	return s, true
}

func payloadIdentifier(payload scval.Value, key string) (string, bool) {
	v, ok := payload.MapGet(key)
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok || !strval.ValidateIdentifier(s) {
		return "", false
	}
	return s, true
}

// payloadAdminRole is payloadIdentifier but allows the empty string, which
// marks a first-time admin role assignment.
func payloadAdminRole(payload scval.Value, key string) (string, bool) {
	v, ok := payload.MapGet(key)
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok {
		return "", false
	}
	if s == "" {
		return "", true
	}
	return s, strval.ValidateIdentifier(s)
}

func payloadLedgerSeq(payload scval.Value, key string) (uint32, bool) {
	v, ok := payload.MapGet(key)
	if !ok {
		return 0, false
	}
	n, ok := v.AsInt()
	if !ok || n.Sign() < 0 || !n.IsUint64() || n.Uint64() > math.MaxUint32 {
		return 0, false
	}
	return uint32(n.Uint64()), true
}
