package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/contract-agent/util"
)

// Type classifies an alert.
type Type string

const (
	TypeExpiration      Type = "expiration"
	TypeProcessingError Type = "processing_error"
	TypeSystemError     Type = "system_error"
)

// Priority is the urgency of an alert.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityFor maps days until expiration to a priority: high within 30
// days, medium within 60, low beyond that.
func PriorityFor(daysUntil int) Priority {
	switch {
	case daysUntil <= 30:
		return PriorityHigh
	case daysUntil <= 60:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Contract is the slice of contract data the alert policy needs.
type Contract struct {
	ContractID     string
	ClientID       string
	Name           string
	Type           string
	ExpirationDate string
}

// Alert is a single alert record.
type Alert struct {
	ID                  string    `json:"alert_id"`
	Type                Type      `json:"alert_type"`
	ContractID          string    `json:"contract_id,omitempty"`
	ClientID            string    `json:"client_id,omitempty"`
	Message             string    `json:"alert_message"`
	Priority            Priority  `json:"priority"`
	DaysUntilExpiration int       `json:"days_until_expiration,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewExpiration builds an expiration alert for a contract with the given
// days remaining.
func NewExpiration(c Contract, daysUntil int, now time.Time) Alert {
	return Alert{
		ID:         uuid.NewString(),
		Type:       TypeExpiration,
		ContractID: c.ContractID,
		ClientID:   c.ClientID,
		Message: fmt.Sprintf("Contract %s (%s) will expire in %d days on %s.",
			c.Name, c.Type, daysUntil, c.ExpirationDate),
		Priority:            PriorityFor(daysUntil),
		DaysUntilExpiration: daysUntil,
		CreatedAt:           now,
	}
}

// NewProcessingError builds an alert for a document that failed processing.
func NewProcessingError(documentName, reason string, now time.Time) Alert {
	return Alert{
		ID:        uuid.NewString(),
		Type:      TypeProcessingError,
		Message:   fmt.Sprintf("Error processing document %s: %s", documentName, reason),
		Priority:  PriorityMedium,
		CreatedAt: now,
	}
}

// ForContract evaluates a contract against the schedule and, if its
// expiration falls within one of the tiers, returns the expiration alert
// to raise. The second return is false when no tier matches. An
// unparseable expiration date is an error, not a silent skip.
func ForContract(s Schedule, c Contract, now time.Time) (Alert, bool, error) {
	expiration, err := util.ParseDate(c.ExpirationDate)
	if err != nil {
		return Alert{}, false, fmt.Errorf("contract %s: %w", c.ContractID, err)
	}
	daysUntil := util.DaysUntil(now, expiration)
	if _, ok := s.Match(daysUntil); !ok {
		return Alert{}, false, nil
	}
	return NewExpiration(c, daysUntil, now), true, nil
}
