// Package events publishes notifications when a period's ledger changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Reasons carried in PeriodChanged.
const (
	ReasonRentToggled    = "rent_toggled"
	ReasonCollectorSet   = "collector_set"
	ReasonExpenseAdded   = "expense_added"
	ReasonExpenseDeleted = "expense_deleted"
	ReasonUnitDeleted    = "unit_deleted"
)

// PeriodChanged tells consumers that the summary of Period must be recomputed.
// It carries no amounts; consumers read the ledger themselves.
type PeriodChanged struct {
	Period    string    `json:"period"`
	Reason    string    `json:"reason"`
	Owner     string    `json:"owner,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPeriodChanged builds a message stamped with the current time.
func NewPeriodChanged(period, reason, owner string) *PeriodChanged {
	return &PeriodChanged{
		Period:    period,
		Reason:    reason,
		Owner:     owner,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *PeriodChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PeriodChangedFromJSON decodes a message.
func PeriodChangedFromJSON(data []byte) (*PeriodChanged, error) {
	var msg PeriodChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal period changed: %w", err)
	}
	return &msg, nil
}

// Publisher delivers period-changed notifications.
type Publisher interface {
	PublishPeriodChanged(ctx context.Context, msg *PeriodChanged) error
	Close() error
}

// NopPublisher drops every message. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishPeriodChanged(context.Context, *PeriodChanged) error { return nil }
func (NopPublisher) Close() error                                               { return nil }
