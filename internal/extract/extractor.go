package extract

import (
	"time"

	"github.com/stellar/go/xdr"
	"go.uber.org/zap"

	"roleScope/internal/model"
	"roleScope/internal/scval"
	"roleScope/internal/strval"
)

// Event name symbols emitted by the access control and ownable modules.
const (
	nameRoleGranted                = "role_granted"
	nameRoleRevoked                = "role_revoked"
	nameRoleAdminChanged           = "role_admin_changed"
	nameAdminTransferInitiated     = "admin_transfer_initiated"
	nameAdminTransferCompleted     = "admin_transfer_completed"
	nameAdminRenounced             = "admin_renounced"
	nameOwnershipTransferStarted   = "ownership_transfer_started"
	nameOwnershipTransferCompleted = "ownership_transfer_completed"
	nameOwnershipRenounced         = "ownership_renounced"
)

// Outcome classifies the result of extracting one raw event.
type Outcome int

const (
	// OutcomeExtracted means a canonical event was produced.
	OutcomeExtracted Outcome = iota
	// OutcomeSkipped means the event name is not one we handle.
	OutcomeSkipped
	// OutcomeDeclined means the event shares a name with a handled kind
	// but does not match its shape or fails validation. Expected for
	// unrelated contracts; not an error.
	OutcomeDeclined
	// OutcomeMissingMeta means the envelope lacks the ledger sequence or
	// close timestamp needed to form a deterministic id.
	OutcomeMissingMeta
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExtracted:
		return "extracted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDeclined:
		return "declined"
	case OutcomeMissingMeta:
		return "missing_meta"
	default:
		return "unknown"
	}
}

type envelope struct {
	id       string
	contract string
	ledger   uint32
	closedAt time.Time
	txHash   string
}

type ruleFunc func(topics []scval.Value, payload scval.Value, env envelope) (*model.DomainEvent, bool)

var rules = map[string]ruleFunc{
	nameRoleGranted:                extractRoleGranted,
	nameRoleRevoked:                extractRoleRevoked,
	nameRoleAdminChanged:           extractRoleAdminChanged,
	nameAdminTransferInitiated:     extractAdminTransferInitiated,
	nameAdminTransferCompleted:     extractAdminTransferCompleted,
	nameAdminRenounced:             extractAdminRenounced,
	nameOwnershipTransferStarted:   extractOwnershipTransferStarted,
	nameOwnershipTransferCompleted: extractOwnershipTransferCompleted,
	nameOwnershipRenounced:         extractOwnershipRenounced,
}

// Config configures extraction behavior.
type Config struct {
	MaxDepth int
}

// Extractor turns raw contract events into canonical domain events.
type Extractor struct {
	maxDepth int
	logger   *zap.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(cfg Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = scval.DefaultMaxDepth
	}
	return &Extractor{maxDepth: cfg.MaxDepth, logger: logger}
}

// Extract applies the rule matching the event's name topic. It never
// returns an error: a raw event either yields a canonical event or one of
// the non-extracted outcomes.
func (e *Extractor) Extract(raw model.RawContractEvent) (*model.DomainEvent, Outcome) {
	topics := e.decodeTopics(raw.Topics)
	if len(topics) == 0 {
		return nil, OutcomeSkipped
	}
	name, ok := topics[0].AsString()
	if !ok {
		return nil, OutcomeSkipped
	}
	rule, ok := rules[name]
	if !ok {
		return nil, OutcomeSkipped
	}

	env, ok := e.buildEnvelope(raw)
	if !ok {
		e.logger.Warn("event missing envelope metadata",
			zap.String("event_id", raw.ID),
			zap.String("contract_id", raw.ContractID),
			zap.String("name", name),
		)
		return nil, OutcomeMissingMeta
	}

	if !strval.ValidateContractAddress(raw.ContractID) {
		e.logger.Debug("invalid envelope contract id",
			zap.String("event_id", raw.ID),
			zap.String("contract_id", raw.ContractID),
		)
		return nil, OutcomeDeclined
	}

	event, ok := rule(topics, e.decodePayload(raw.Value), env)
	if !ok {
		e.logger.Debug("event shape mismatch",
			zap.String("event_id", raw.ID),
			zap.String("contract_id", raw.ContractID),
			zap.String("name", name),
			zap.Int("topics", len(topics)),
		)
		return nil, OutcomeDeclined
	}
	return event, OutcomeExtracted
}

func (e *Extractor) decodeTopics(topics []string) []scval.Value {
	out := make([]scval.Value, 0, len(topics))
	for _, topic := range topics {
		var raw xdr.ScVal
		if err := xdr.SafeUnmarshalBase64(topic, &raw); err != nil {
			out = append(out, scval.Absent())
			continue
		}
		out = append(out, scval.DecodeWithDepth(raw, e.maxDepth))
	}
	return out
}

func (e *Extractor) decodePayload(value string) scval.Value {
	if value == "" {
		return scval.Absent()
	}
	var raw xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(value, &raw); err != nil {
		return scval.Absent()
	}
	return scval.DecodeWithDepth(raw, e.maxDepth)
}

func (e *Extractor) buildEnvelope(raw model.RawContractEvent) (envelope, bool) {
	if raw.ID == "" || raw.TxHash == "" || raw.LedgerSeq == 0 {
		return envelope{}, false
	}
	closedAt, err := time.Parse(time.RFC3339, raw.ClosedAt)
	if err != nil || closedAt.IsZero() {
		return envelope{}, false
	}
	return envelope{
		id:       raw.ID,
		contract: raw.ContractID,
		ledger:   raw.LedgerSeq,
		closedAt: closedAt.UTC(),
		txHash:   raw.TxHash,
	}, true
}

func baseEvent(env envelope, t model.EventType) *model.DomainEvent {
	return &model.DomainEvent{
		ID:          env.id + "-" + t.IDSuffix(),
		Contract:    env.contract,
		Type:        t,
		BlockHeight: env.ledger,
		Ledger:      env.ledger,
		Timestamp:   env.closedAt,
		TxHash:      env.txHash,
	}
}
