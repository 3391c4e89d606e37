package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecordKind classifies records ingested from external systems.
type RecordKind string

const (
	RecordKindApplication RecordKind = "application"
	RecordKindEmployee    RecordKind = "employee"
	RecordKindDepartment  RecordKind = "department"
)

// ExternalRecord is an entity received from a provider, keyed by the
// identifier the provider assigned to it. Ingesting the same key twice is a
// no-op.
type ExternalRecord struct {
	ID            uuid.UUID       `json:"id"`
	IntegrationID IntegrationID   `json:"integrationId"`
	Kind          RecordKind      `json:"kind"`
	ExternalID    string          `json:"externalId"`
	Payload       json.RawMessage `json:"payload"`
	ReceivedAt    time.Time       `json:"receivedAt"`
}
