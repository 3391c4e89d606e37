package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostingID uniquely identifies a job-board posting.
type PostingID uuid.UUID

func (id PostingID) String() string { return uuid.UUID(id).String() }

// PostingStatus is the lifecycle state of a job-board posting.
type PostingStatus string

const (
	PostingStatusDraft  PostingStatus = "draft"
	PostingStatusPosted PostingStatus = "posted"
	PostingStatusClosed PostingStatus = "closed"
	PostingStatusError  PostingStatus = "error"
)

// JobBoardPosting tracks a requisition published on a job board. There is at
// most one posting per requisition and integration.
type JobBoardPosting struct {
	ID            PostingID     `json:"id"`
	RequisitionID string        `json:"requisitionId"`
	IntegrationID IntegrationID `json:"integrationId"`

	ExternalID string         `json:"externalId,omitempty"`
	PostedAt   time.Time      `json:"postedAt,omitzero"`
	LastSynced time.Time      `json:"lastSynced,omitzero"`
	Status     PostingStatus  `json:"status"`
	URL        string         `json:"url,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Reusable reports whether a new post attempt may reuse this posting.
func (p JobBoardPosting) Reusable() bool {
	return p.Status == PostingStatusDraft || p.Status == PostingStatusError
}

// Requisition is the serialized view of an open role received from the ATS
// layer. The integration engine never loads requisitions itself.
type Requisition struct {
	ID             string   `json:"id"              validate:"required"`
	Title          string   `json:"title"           validate:"required"`
	Description    string   `json:"description"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	Remote         bool     `json:"remote"`
	SalaryMin      float64  `json:"salaryMin"`
	SalaryMax      float64  `json:"salaryMax"`
	Currency       string   `json:"currency"`
	Requirements   []string `json:"requirements"`
	ApplyURL       string   `json:"applyUrl"`
}
