package postgres

import (
	"atsconnect/pkg/domain"
	"database/sql"
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// jsonb is a raw JSON document stored in a JSONB column. It is written as a
// text literal so goqu interpolates it as a quoted string.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}

	return nil
}

type PgIntegration struct {
	ID       uuid.UUID `db:"id"       goqu:"skipinsert"`
	Provider string    `db:"provider"`
	Category string    `db:"category"`
	Name     string    `db:"name"`
	IsActive bool      `db:"is_active"`

	// ConfigEncrypted is stored base64 encoded in a text column.
	ConfigEncrypted sql.NullString `db:"config_encrypted"`

	OAuthToken        sql.NullString `db:"oauth_token"`
	OAuthRefreshToken sql.NullString `db:"oauth_refresh_token"`
	OAuthExpiresAt    sql.NullTime   `db:"oauth_expires_at"`

	LastSync     sql.NullTime   `db:"last_sync"     goqu:"skipinsert"`
	SyncStatus   string         `db:"sync_status"`
	ErrorLog     sql.NullString `db:"error_log"     goqu:"skipinsert"`
	FailureCount int            `db:"failure_count" goqu:"skipinsert"`
	Metadata     jsonb          `db:"metadata"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgIntegration) ToDomain() (*domain.Integration, error) {
	var metadata map[string]any
	if len(p.Metadata) > 0 {
		if err := json.Unmarshal(p.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("could not unmarshal integration metadata: %w", err)
		}
	}

	var config []byte
	if p.ConfigEncrypted.Valid {
		b, err := base64.StdEncoding.DecodeString(p.ConfigEncrypted.String)
		if err != nil {
			return nil, fmt.Errorf("could not decode integration config: %w", err)
		}
		config = b
	}

	return &domain.Integration{
		ID:                domain.IntegrationID(p.ID),
		Provider:          domain.Provider(p.Provider),
		Category:          domain.Category(p.Category),
		Name:              p.Name,
		IsActive:          p.IsActive,
		ConfigEncrypted:   config,
		OAuthToken:        p.OAuthToken.String,
		OAuthRefreshToken: p.OAuthRefreshToken.String,
		OAuthExpiresAt:    p.OAuthExpiresAt.Time,
		LastSync:          p.LastSync.Time,
		SyncStatus:        domain.SyncStatus(p.SyncStatus),
		ErrorLog:          p.ErrorLog.String,
		FailureCount:      p.FailureCount,
		Metadata:          metadata,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}, nil
}

func (p *PgIntegration) FromDomain(in domain.Integration) error {
	metadata, err := marshalMap(in.Metadata)
	if err != nil {
		return fmt.Errorf("could not marshal integration metadata: %w", err)
	}

	status := in.SyncStatus
	if status == "" {
		status = domain.SyncStatusIdle
	}

	*p = PgIntegration{
		ID:                uuid.UUID(in.ID),
		Provider:          string(in.Provider),
		Category:          string(in.Category),
		Name:              in.Name,
		IsActive:          in.IsActive,
		ConfigEncrypted:   encodeConfig(in.ConfigEncrypted),
		OAuthToken:        nullString(in.OAuthToken),
		OAuthRefreshToken: nullString(in.OAuthRefreshToken),
		OAuthExpiresAt:    nullTime(in.OAuthExpiresAt),
		SyncStatus:        string(status),
		Metadata:          metadata,
	}

	return nil
}

type PgEndpoint struct {
	ID     uuid.UUID `db:"id"     goqu:"skipinsert"`
	URL    string    `db:"url"`
	Secret string    `db:"secret"`
	Events jsonb     `db:"events"`

	IsActive     bool         `db:"is_active"`
	FailureCount int          `db:"failure_count" goqu:"skipinsert"`
	LastSuccess  sql.NullTime `db:"last_success"  goqu:"skipinsert"`
	LastFailure  sql.NullTime `db:"last_failure"  goqu:"skipinsert"`

	Headers       jsonb         `db:"headers"`
	IntegrationID uuid.NullUUID `db:"integration_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgEndpoint) ToDomain() (*domain.WebhookEndpoint, error) {
	var events []domain.EventType
	if err := json.Unmarshal(p.Events, &events); err != nil {
		return nil, fmt.Errorf("could not unmarshal endpoint events: %w", err)
	}

	var headers map[string]string
	if len(p.Headers) > 0 {
		if err := json.Unmarshal(p.Headers, &headers); err != nil {
			return nil, fmt.Errorf("could not unmarshal endpoint headers: %w", err)
		}
	}

	var integrationID *domain.IntegrationID
	if p.IntegrationID.Valid {
		id := domain.IntegrationID(p.IntegrationID.UUID)
		integrationID = &id
	}

	return &domain.WebhookEndpoint{
		ID:            domain.EndpointID(p.ID),
		URL:           p.URL,
		Secret:        p.Secret,
		Events:        events,
		IsActive:      p.IsActive,
		FailureCount:  p.FailureCount,
		LastSuccess:   p.LastSuccess.Time,
		LastFailure:   p.LastFailure.Time,
		Headers:       headers,
		IntegrationID: integrationID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}, nil
}

func (p *PgEndpoint) FromDomain(in domain.WebhookEndpoint) error {
	events, err := json.Marshal(in.Events)
	if err != nil {
		return fmt.Errorf("could not marshal endpoint events: %w", err)
	}
	headers := []byte("{}")
	if len(in.Headers) > 0 {
		headers, err = json.Marshal(in.Headers)
		if err != nil {
			return fmt.Errorf("could not marshal endpoint headers: %w", err)
		}
	}

	var integrationID uuid.NullUUID
	if in.IntegrationID != nil {
		integrationID = uuid.NullUUID{UUID: uuid.UUID(*in.IntegrationID), Valid: true}
	}

	*p = PgEndpoint{
		ID:            uuid.UUID(in.ID),
		URL:           in.URL,
		Secret:        in.Secret,
		Events:        events,
		IsActive:      in.IsActive,
		Headers:       headers,
		IntegrationID: integrationID,
	}

	return nil
}

type PgDelivery struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	EndpointID uuid.UUID `db:"endpoint_id"`
	EventType  string    `db:"event_type"`
	Payload    jsonb     `db:"payload"`

	ResponseStatus sql.NullInt64  `db:"response_status" goqu:"skipinsert"`
	ResponseBody   sql.NullString `db:"response_body"   goqu:"skipinsert"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"    goqu:"skipinsert"`
	Attempts       int            `db:"attempts"`
	ErrorMessage   sql.NullString `db:"error_message"   goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDelivery) ToDomain() *domain.WebhookDelivery {
	return &domain.WebhookDelivery{
		ID:             domain.DeliveryID(p.ID),
		EndpointID:     domain.EndpointID(p.EndpointID),
		EventType:      domain.EventType(p.EventType),
		Payload:        json.RawMessage(p.Payload),
		ResponseStatus: int(p.ResponseStatus.Int64),
		ResponseBody:   p.ResponseBody.String,
		DeliveredAt:    p.DeliveredAt.Time,
		Attempts:       p.Attempts,
		ErrorMessage:   p.ErrorMessage.String,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgDelivery) FromDomain(in domain.WebhookDelivery) {
	attempts := in.Attempts
	if attempts < 1 {
		attempts = 1
	}

	*p = PgDelivery{
		ID:         uuid.UUID(in.ID),
		EndpointID: uuid.UUID(in.EndpointID),
		EventType:  string(in.EventType),
		Payload:    jsonb(in.Payload),
		Attempts:   attempts,
	}
}

type PgPosting struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	RequisitionID string    `db:"requisition_id"`
	IntegrationID uuid.UUID `db:"integration_id"`

	ExternalID sql.NullString `db:"external_id"`
	PostedAt   sql.NullTime   `db:"posted_at"`
	LastSynced sql.NullTime   `db:"last_synced"`
	Status     string         `db:"status"`
	URL        sql.NullString `db:"url"`
	Metadata   jsonb          `db:"metadata"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPosting) ToDomain() (*domain.JobBoardPosting, error) {
	var metadata map[string]any
	if len(p.Metadata) > 0 {
		if err := json.Unmarshal(p.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("could not unmarshal posting metadata: %w", err)
		}
	}

	return &domain.JobBoardPosting{
		ID:            domain.PostingID(p.ID),
		RequisitionID: p.RequisitionID,
		IntegrationID: domain.IntegrationID(p.IntegrationID),
		ExternalID:    p.ExternalID.String,
		PostedAt:      p.PostedAt.Time,
		LastSynced:    p.LastSynced.Time,
		Status:        domain.PostingStatus(p.Status),
		URL:           p.URL.String,
		Metadata:      metadata,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}, nil
}

func (p *PgPosting) FromDomain(in domain.JobBoardPosting) error {
	metadata, err := marshalMap(in.Metadata)
	if err != nil {
		return fmt.Errorf("could not marshal posting metadata: %w", err)
	}

	status := in.Status
	if status == "" {
		status = domain.PostingStatusDraft
	}

	*p = PgPosting{
		ID:            uuid.UUID(in.ID),
		RequisitionID: in.RequisitionID,
		IntegrationID: uuid.UUID(in.IntegrationID),
		ExternalID:    nullString(in.ExternalID),
		PostedAt:      nullTime(in.PostedAt),
		LastSynced:    nullTime(in.LastSynced),
		Status:        string(status),
		URL:           nullString(in.URL),
		Metadata:      metadata,
	}

	return nil
}

type PgRecord struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	IntegrationID uuid.UUID `db:"integration_id"`
	Kind          string    `db:"kind"`
	ExternalID    string    `db:"external_id"`
	Payload       jsonb     `db:"payload"`
	ReceivedAt    time.Time `db:"received_at"    goqu:"skipinsert"`
}

func (p *PgRecord) FromDomain(in domain.ExternalRecord) {
	payload := jsonb(in.Payload)
	if len(payload) == 0 {
		payload = jsonb("{}")
	}

	*p = PgRecord{
		IntegrationID: uuid.UUID(in.IntegrationID),
		Kind:          string(in.Kind),
		ExternalID:    in.ExternalID,
		Payload:       payload,
	}
}

func pgIntegrationsToDomain(rows []PgIntegration) ([]domain.Integration, error) {
	out := make([]domain.Integration, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgEndpointsToDomain(rows []PgEndpoint) ([]domain.WebhookEndpoint, error) {
	out := make([]domain.WebhookEndpoint, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgPostingsToDomain(rows []PgPosting) ([]domain.JobBoardPosting, error) {
	out := make([]domain.JobBoardPosting, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func marshalMap[T any](m map[string]T) (jsonb, error) {
	if len(m) == 0 {
		return jsonb("{}"), nil
	}

	return json.Marshal(m) //nolint: wrapcheck
}

func encodeConfig(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}

	return sql.NullString{String: base64.StdEncoding.EncodeToString(b), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
