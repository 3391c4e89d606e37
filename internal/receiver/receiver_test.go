package receiver_test

import (
	"atsconnect/internal/events"
	"atsconnect/internal/receiver"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/signature"
	"atsconnect/pkg/storage"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockintegration "atsconnect/internal/integration/mock"
	mockstorage "atsconnect/pkg/storage/mock"

	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "whsec_test"

type fixture struct {
	registry *mockintegration.MockRegistry
	storage  *mockstorage.MockStorage
	router   chi.Router
	in       domain.Integration

	published []events.DomainEvent
}

func newFixture(t *testing.T, category domain.Category, opts ...func(*receiver.Options)) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		registry: mockintegration.NewMockRegistry(ctrl),
		storage:  mockstorage.NewMockStorage(ctrl),
		router:   chi.NewRouter(),
		in: domain.Integration{
			ID:       domain.IntegrationID(uuid.New()),
			Provider: domain.ProviderLinkedIn,
			Category: category,
			IsActive: true,
		},
	}
	bus := EventBus.New()
	require.NoError(t, bus.Subscribe(events.DomainEventTopic, func(_ context.Context, event events.DomainEvent) {
		f.published = append(f.published, event)
	}))
	options := receiver.Options{Bus: bus}
	for _, opt := range opts {
		opt(&options)
	}
	receiver.New(f.registry, f.storage, options).Routes(f.router)

	return f
}

func (f *fixture) post(body, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/integrations/receive/"+f.in.ID.String()+"/", strings.NewReader(body))
	if sig != "" {
		req.Header.Set(signature.Header, sig)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func (f *fixture) expectIntegration() {
	in := f.in
	f.registry.EXPECT().Get(gomock.Any(), f.in.ID).Return(&in, nil)
}

func (f *fixture) expectSecret(value string) {
	f.registry.EXPECT().Config(gomock.Any(), gomock.Any()).
		Return(domain.IntegrationConfig{domain.ConfigWebhookSecret: value}, nil)
}

func sign(body string) string { return signature.Sign([]byte(body), secret) }

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestReceive_Application(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	body := `{"event":"application.created","data":{"id":"app-1","name":"Ada"}}`

	f.expectIntegration()
	f.expectSecret(secret)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.ExternalRecord) (int, error) {
			require.Len(t, records, 1)
			require.Equal(t, "app-1", records[0].ExternalID)
			require.Equal(t, domain.RecordKindApplication, records[0].Kind)
			require.JSONEq(t, `{"id":"app-1","name":"Ada"}`, string(records[0].Payload))

			return 1, nil
		},
	)

	rec := f.post(body, sign(body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "received", decode(t, rec)["status"])

	require.Len(t, f.published, 1)
	require.Equal(t, domain.EventApplicationCreated, f.published[0].Type)
	require.Equal(t, map[string]any{"id": "app-1", "name": "Ada"},
		f.published[0].Payload.(map[string]any)["application"])
}

func TestReceive_KnownApplicationIsNotPublished(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	body := `{"event":"application.created","data":{"id":"app-1"}}`

	f.expectIntegration()
	f.expectSecret(secret)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).Return(0, nil)

	rec := f.post(body, sign(body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, f.published)
}

func TestReceive_PostingClosed(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	body := `{"event":"posting.expired","data":{"posting_id":4711}}`
	posting := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusPosted}

	f.expectIntegration()
	f.expectSecret(secret)
	f.storage.EXPECT().PostingByExternalID(gomock.Any(), f.in.ID, "4711").Return(posting, nil)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), posting.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Equal(t, domain.PostingStatusClosed, u.Status)

			return posting, nil
		},
	)

	require.Equal(t, http.StatusOK, f.post(body, sign(body)).Code)
}

func TestReceive_HRISEventFromHeader(t *testing.T) {
	f := newFixture(t, domain.CategoryHRIS)
	body := `{"id":"E-9","firstName":"Grace"}`

	f.expectIntegration()
	f.expectSecret(secret)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.ExternalRecord) (int, error) {
			require.Equal(t, domain.RecordKindEmployee, records[0].Kind)
			require.Equal(t, "E-9", records[0].ExternalID)

			return 1, nil
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/integrations/receive/"+f.in.ID.String()+"/", strings.NewReader(body))
	req.Header.Set(signature.Header, sign(body))
	req.Header.Set("X-Event-Type", "employee.updated")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReceive_OtherCategoryIsAcknowledged(t *testing.T) {
	f := newFixture(t, domain.CategoryCustom)
	body := `{"event":"anything"}`

	f.expectIntegration()
	f.expectSecret(secret)

	require.Equal(t, http.StatusOK, f.post(body, sign(body)).Code)
}

func TestReceive_InactiveIntegration(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	f.in.IsActive = false
	body := `{"event":"application.created","data":{"id":"app-1"}}`

	// no config read, no handler
	f.expectIntegration()

	rec := f.post(body, sign(body))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReceive_Rejections(t *testing.T) {
	body := `{"event":"application.created","data":{"id":"app-1"}}`

	tests := []struct {
		name   string
		setup  func(f *fixture)
		body   string
		sig    string
		status int
	}{
		{
			name: "unknown integration",
			setup: func(f *fixture) {
				f.registry.EXPECT().Get(gomock.Any(), f.in.ID).Return(nil, serrors.With(serrors.ErrNotFound, "not found"))
			},
			body:   body,
			sig:    sign(body),
			status: http.StatusNotFound,
		},
		{
			name:   "missing signature",
			setup:  func(f *fixture) { f.expectIntegration() },
			body:   body,
			status: http.StatusUnauthorized,
		},
		{
			name: "missing webhook secret",
			setup: func(f *fixture) {
				f.expectIntegration()
				f.expectSecret("")
			},
			body:   body,
			sig:    sign(body),
			status: http.StatusInternalServerError,
		},
		{
			name: "undecryptable config",
			setup: func(f *fixture) {
				f.expectIntegration()
				f.registry.EXPECT().Config(gomock.Any(), gomock.Any()).
					Return(nil, serrors.With(serrors.ErrConfiguration, "could not open config"))
			},
			body:   body,
			sig:    sign(body),
			status: http.StatusInternalServerError,
		},
		{
			name: "wrong signature",
			setup: func(f *fixture) {
				f.expectIntegration()
				f.expectSecret(secret)
			},
			body:   body,
			sig:    signature.Sign([]byte(body), "other"),
			status: http.StatusUnauthorized,
		},
		{
			name: "not an object",
			setup: func(f *fixture) {
				f.expectIntegration()
				f.expectSecret(secret)
			},
			body:   `["application.created"]`,
			sig:    sign(`["application.created"]`),
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.CategoryJobBoard)
			tt.setup(f)

			require.Equal(t, tt.status, f.post(tt.body, tt.sig).Code)
		})
	}
}

func TestReceive_InvalidID(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)

	req := httptest.NewRequest(http.MethodPost, "/integrations/receive/not-a-uuid/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReceive_HandlerErrorHidesDetails(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	body := `{"event":"application.created","data":{"id":"app-1"}}`

	f.expectIntegration()
	f.expectSecret(secret)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).
		Return(0, errors.New("pq: relation external_records does not exist"))

	rec := f.post(body, sign(body))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal error", decode(t, rec)["error"])
	require.NotContains(t, rec.Body.String(), "external_records")
}

func TestReceive_ReplayIsProcessedOnce(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard)
	body := `{"event":"application.created","data":{"id":"app-1"}}`

	f.registry.EXPECT().Get(gomock.Any(), f.in.ID).Return(&f.in, nil).Times(2)
	f.registry.EXPECT().Config(gomock.Any(), gomock.Any()).
		Return(domain.IntegrationConfig{domain.ConfigWebhookSecret: secret}, nil).Times(2)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).Return(1, nil).Times(1)

	require.Equal(t, http.StatusOK, f.post(body, sign(body)).Code)
	require.Equal(t, http.StatusOK, f.post(body, sign(body)).Code)
}

func TestReceive_BodyTooLarge(t *testing.T) {
	f := newFixture(t, domain.CategoryJobBoard, func(o *receiver.Options) { o.MaxBodyBytes = 64 })
	body := `{"event":"application.created","data":{"id":"app-1","name":"` + strings.Repeat("a", 64) + `"}}`

	f.expectIntegration()
	f.expectSecret(secret)

	rec := f.post(body, sign(body))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "body too large", decode(t, rec)["error"])
	require.Empty(t, f.published)
}
