package domain

import "time"

// ActionType is one configured remediation action label. Terminal marks
// actions that close the investigation of a transaction.
type ActionType struct {
	Value    string `json:"value"`
	Terminal bool   `json:"terminal"`
}

// ActionTaxonomy is the closed set of permissible action values. It is
// loaded once at startup and immutable thereafter, so it is safe to share
// across requests without locking.
type ActionTaxonomy struct {
	types []ActionType
	index map[string]ActionType
}

// NewActionTaxonomy builds a taxonomy from the configured list. Later
// duplicates of the same value win, matching config override order.
func NewActionTaxonomy(types []ActionType) ActionTaxonomy {
	index := make(map[string]ActionType, len(types))
	for _, at := range types {
		index[at.Value] = at
	}
	return ActionTaxonomy{types: append([]ActionType(nil), types...), index: index}
}

// Find returns the action type for a value, if configured.
func (t ActionTaxonomy) Find(value string) (ActionType, bool) {
	at, ok := t.index[value]
	return at, ok
}

// Types returns a copy of the configured list, in configuration order.
func (t ActionTaxonomy) Types() []ActionType {
	return append([]ActionType(nil), t.types...)
}

// Action is one append-only remediation record. Ordering among actions for
// a transaction is by Timestamp; the store guarantees nothing further.
type Action struct {
	ID            string     `json:"id"`
	TransactionID string     `json:"transactionId"`
	UserID        string     `json:"userId"`
	Action        ActionType `json:"action"`
	Timestamp     time.Time  `json:"timestamp"`
}
