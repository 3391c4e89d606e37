package jobboard_test

import (
	"atsconnect/internal/jobboard"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mockintegration "atsconnect/internal/integration/mock"
	mockprovider "atsconnect/pkg/provider/mock"
	mockstorage "atsconnect/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	registry *mockintegration.MockRegistry
	storage  *mockstorage.MockStorage
	client   *mockprovider.MockJobBoardClient
	service  jobboard.Service
	in       domain.Integration
	conn     provider.Connection
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		registry: mockintegration.NewMockRegistry(ctrl),
		storage:  mockstorage.NewMockStorage(ctrl),
		client:   mockprovider.NewMockJobBoardClient(ctrl),
		in: domain.Integration{
			ID:       domain.IntegrationID(uuid.New()),
			Provider: domain.ProviderLinkedIn,
			Category: domain.CategoryJobBoard,
			IsActive: true,
		},
		conn: provider.Connection{Provider: domain.ProviderLinkedIn, AccessToken: "token"},
	}
	f.service = jobboard.New(f.registry, f.storage, f.client)

	return f
}

func (f *fixture) expectGet() {
	in := f.in
	f.registry.EXPECT().Get(gomock.Any(), f.in.ID).Return(&in, nil)
}

// expectSync wires the status transitions of one provider sync.
func (f *fixture) expectSync(final domain.SyncStatus) {
	gomock.InOrder(
		f.registry.EXPECT().MarkSyncStatus(gomock.Any(), f.in.ID, domain.SyncStatusSyncing, nil).Return(&f.in, nil),
		f.registry.EXPECT().Connect(gomock.Any(), f.in).Return(f.conn, nil),
		f.registry.EXPECT().MarkSyncStatus(gomock.Any(), f.in.ID, final, gomock.Any()).Return(&f.in, nil),
	)
}

var requisition = domain.Requisition{
	ID:           "REQ-1",
	Title:        "Backend Engineer",
	Description:  "Build integrations.",
	Location:     "Berlin",
	Requirements: []string{"Go"},
}

func TestPostJob_NewPosting(t *testing.T) {
	f := newFixture(t)
	postingID := domain.PostingID(uuid.New())

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(nil, nil)
	f.storage.EXPECT().StorePosting(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.JobBoardPosting) (*domain.JobBoardPosting, error) {
			require.Equal(t, domain.PostingStatusDraft, p.Status)
			p.ID = postingID

			return &p, nil
		},
	)
	f.expectSync(domain.SyncStatusSuccess)
	f.client.EXPECT().CreatePosting(gomock.Any(), f.conn, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ provider.Connection, payload map[string]any) (provider.PostingResult, error) {
			require.Equal(t, "Backend Engineer", payload["title"])

			return provider.PostingResult{ExternalID: "li-9", URL: "https://linkedin.test/jobs/9"}, nil
		},
	)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), postingID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Equal(t, domain.PostingStatusPosted, u.Status)
			require.Equal(t, "li-9", *u.ExternalID)
			require.True(t, u.MarkPosted)
			require.True(t, u.TouchLastSynced)

			return &domain.JobBoardPosting{ID: postingID, Status: u.Status, ExternalID: *u.ExternalID, URL: *u.URL}, nil
		},
	)

	res, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PostingStatusPosted, res.Status)
	require.Equal(t, "https://linkedin.test/jobs/9", res.URL)
}

func TestPostJob_AlreadyPosted(t *testing.T) {
	f := newFixture(t)

	// no sync, no provider call
	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").
		Return(&domain.JobBoardPosting{Status: domain.PostingStatusPosted}, nil)

	_, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.ErrorContains(t, err, "already posted")
}

func TestPostJob_Closed(t *testing.T) {
	f := newFixture(t)

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").
		Return(&domain.JobBoardPosting{Status: domain.PostingStatusClosed}, nil)

	_, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.ErrorContains(t, err, "closed")
}

func TestPostJob_GateRunsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.Integration)
	}{
		{"circuit broken", func(in *domain.Integration) { in.FailureCount = domain.CircuitBreakerThreshold }},
		{"inactive", func(in *domain.Integration) { in.IsActive = false }},
		{"not a job board", func(in *domain.Integration) { in.Category = domain.CategoryHRIS }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mutate(&f.in)
			f.expectGet()

			_, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
			require.ErrorIs(t, err, serrors.ErrValidation)
		})
	}
}

func TestPostJob_InvalidRequisition(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PostJob(context.Background(), domain.Requisition{ID: "REQ-2"}, f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestPostJob_ProviderFailure(t *testing.T) {
	f := newFixture(t)
	posting := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusError}
	errProvider := errors.New("linkedin returned 500")

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(posting, nil)
	f.expectSync(domain.SyncStatusError)
	f.client.EXPECT().CreatePosting(gomock.Any(), f.conn, gomock.Any()).Return(provider.PostingResult{}, errProvider)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), posting.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Equal(t, domain.PostingStatusError, u.Status)
			require.Contains(t, u.Metadata["error"], "linkedin returned 500")

			return posting, nil
		},
	)

	_, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.ErrorIs(t, err, errProvider)
}

func TestPostJob_DraftRace(t *testing.T) {
	f := newFixture(t)
	draft := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusDraft}

	f.expectGet()
	gomock.InOrder(
		f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(nil, nil),
		f.storage.EXPECT().StorePosting(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate),
		f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(draft, nil),
	)
	f.expectSync(domain.SyncStatusSuccess)
	f.client.EXPECT().CreatePosting(gomock.Any(), f.conn, gomock.Any()).
		Return(provider.PostingResult{ExternalID: "li-1"}, nil)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), draft.ID, gomock.Any()).
		Return(&domain.JobBoardPosting{ID: draft.ID, Status: domain.PostingStatusPosted}, nil)

	res, err := f.service.PostJob(context.Background(), requisition, f.in.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, res.ID)
}

func TestUpdateJob(t *testing.T) {
	f := newFixture(t)
	posting := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusPosted, ExternalID: "li-9"}

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(posting, nil)
	f.expectSync(domain.SyncStatusSuccess)
	f.client.EXPECT().UpdatePosting(gomock.Any(), f.conn, "li-9", gomock.Any()).
		Return(provider.PostingResult{ExternalID: "li-9"}, nil)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), posting.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Empty(t, u.Status)
			require.Nil(t, u.URL)
			require.True(t, u.TouchLastSynced)

			return posting, nil
		},
	)

	_, err := f.service.UpdateJob(context.Background(), requisition, f.in.ID)
	require.NoError(t, err)
}

func TestUpdateJob_NotPosted(t *testing.T) {
	f := newFixture(t)

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").
		Return(&domain.JobBoardPosting{Status: domain.PostingStatusDraft}, nil)

	_, err := f.service.UpdateJob(context.Background(), requisition, f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestCloseJob(t *testing.T) {
	f := newFixture(t)
	posting := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusPosted, ExternalID: "li-9"}

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(posting, nil)
	f.expectSync(domain.SyncStatusSuccess)
	f.client.EXPECT().ClosePosting(gomock.Any(), f.conn, "li-9").Return(nil)
	f.storage.EXPECT().UpdatePosting(gomock.Any(), posting.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Equal(t, domain.PostingStatusClosed, u.Status)

			return &domain.JobBoardPosting{ID: posting.ID, Status: u.Status}, nil
		},
	)

	res, err := f.service.CloseJob(context.Background(), "REQ-1", f.in.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PostingStatusClosed, res.Status)
}

func TestCloseJob_ProviderFailureKeepsStatus(t *testing.T) {
	f := newFixture(t)
	posting := &domain.JobBoardPosting{ID: domain.PostingID(uuid.New()), Status: domain.PostingStatusPosted, ExternalID: "li-9"}

	f.expectGet()
	f.storage.EXPECT().PostingByRequisition(gomock.Any(), f.in.ID, "REQ-1").Return(posting, nil)
	f.expectSync(domain.SyncStatusError)
	f.client.EXPECT().ClosePosting(gomock.Any(), f.conn, "li-9").Return(serrors.With(serrors.ErrRateLimited, "slow down"))
	f.storage.EXPECT().UpdatePosting(gomock.Any(), posting.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.PostingID, u storage.PostingUpdates) (*domain.JobBoardPosting, error) {
			require.Empty(t, u.Status)
			require.Contains(t, u.Metadata["error"], "slow down")

			return posting, nil
		},
	)

	_, err := f.service.CloseJob(context.Background(), "REQ-1", f.in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestImportApplications(t *testing.T) {
	f := newFixture(t)
	since := time.Now().Add(-time.Hour)

	f.expectGet()
	f.storage.EXPECT().PostingsByStatus(gomock.Any(), f.in.ID, domain.PostingStatusPosted).Return([]domain.JobBoardPosting{
		{ExternalID: "li-1"},
		{ExternalID: "li-2"},
	}, nil)
	f.expectSync(domain.SyncStatusSuccess)
	f.client.EXPECT().ListApplications(gomock.Any(), f.conn, "li-1", since).Return([]provider.Record{
		{ExternalID: "a-1", Payload: json.RawMessage(`{"name":"Ada"}`)},
		{ExternalID: "a-2", Payload: json.RawMessage(`{"name":"Grace"}`)},
	}, nil)
	f.client.EXPECT().ListApplications(gomock.Any(), f.conn, "li-2", since).Return(nil, nil)
	f.storage.EXPECT().InsertExternalRecords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.ExternalRecord) (int, error) {
			require.Len(t, records, 2)
			for _, r := range records {
				require.Equal(t, domain.RecordKindApplication, r.Kind)
				require.Equal(t, f.in.ID, r.IntegrationID)
			}

			// a-1 was imported before
			return 1, nil
		},
	)

	n, err := f.service.ImportApplications(context.Background(), f.in.ID, since)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestImportApplications_ProviderFailure(t *testing.T) {
	f := newFixture(t)

	f.expectGet()
	f.storage.EXPECT().PostingsByStatus(gomock.Any(), f.in.ID, domain.PostingStatusPosted).
		Return([]domain.JobBoardPosting{{ExternalID: "li-1"}}, nil)
	f.expectSync(domain.SyncStatusError)
	f.client.EXPECT().ListApplications(gomock.Any(), f.conn, "li-1", gomock.Any()).Return(nil, errors.New("boom"))

	_, err := f.service.ImportApplications(context.Background(), f.in.ID, time.Time{})
	require.ErrorIs(t, err, serrors.ErrValidation)
}
