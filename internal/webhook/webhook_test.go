package webhook_test

import (
	"atsconnect/internal/webhook"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mockstorage "atsconnect/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, webhook.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := webhook.New(st, webhook.Options{MaxAttempts: 4, Timeout: time.Second})

	return ctrl, st, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Register(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreEndpoint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.WebhookEndpoint) (*domain.WebhookEndpoint, error) {
			require.Len(t, e.Secret, 64)
			require.True(t, e.IsActive)
			require.Equal(t, []domain.EventType{domain.EventApplicationCreated, domain.EventOfferSent}, e.Events)
			e.ID = domain.EndpointID(uuid.New())

			return &e, nil
		},
	)

	res, err := s.Register(context.Background(), webhook.RegisterInput{
		URL:    "https://hooks.example.com/ats",
		Events: []domain.EventType{domain.EventApplicationCreated, domain.EventOfferSent, domain.EventApplicationCreated},
	})
	require.NoError(t, err)
	require.NotZero(t, res.ID)
}

func TestService_Register_KeepsProvidedSecret(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreEndpoint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.WebhookEndpoint) (*domain.WebhookEndpoint, error) {
			require.Equal(t, "my-secret", e.Secret)

			return &e, nil
		},
	)

	_, err := s.Register(context.Background(), webhook.RegisterInput{
		URL:    "http://localhost:9000/hook",
		Events: []domain.EventType{domain.EventRequisitionOpened},
		Secret: "my-secret",
	})
	require.NoError(t, err)
}

func TestService_Register_Invalid(t *testing.T) {
	_, _, s := newTestService(t)

	tests := []struct {
		name  string
		input webhook.RegisterInput
	}{
		{"no events", webhook.RegisterInput{URL: "https://example.com"}},
		{"unknown event", webhook.RegisterInput{
			URL:    "https://example.com",
			Events: []domain.EventType{domain.EventOfferSent, "candidate.deleted"},
		}},
		{"not a URL", webhook.RegisterInput{URL: "example", Events: []domain.EventType{domain.EventOfferSent}}},
		{"not http", webhook.RegisterInput{URL: "ftp://example.com", Events: []domain.EventType{domain.EventOfferSent}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.input)
			require.ErrorIs(t, err, serrors.ErrValidation)
		})
	}
}

func TestService_DisableFailingEndpoint(t *testing.T) {
	_, st, s := newTestService(t)
	endpoint := domain.WebhookEndpoint{ID: domain.EndpointID(uuid.New()), IsActive: true, FailureCount: 9}

	// below the threshold nothing is written
	changed, err := s.DisableFailingEndpoint(context.Background(), endpoint)
	require.NoError(t, err)
	require.False(t, changed)

	endpoint.FailureCount = 10
	st.EXPECT().DisableEndpoint(gomock.Any(), endpoint.ID, domain.CircuitBreakerThreshold).Return(true, nil)
	changed, err = s.DisableFailingEndpoint(context.Background(), endpoint)
	require.NoError(t, err)
	require.True(t, changed)

	// already disabled
	st.EXPECT().DisableEndpoint(gomock.Any(), endpoint.ID, domain.CircuitBreakerThreshold).Return(false, nil)
	changed, err = s.DisableFailingEndpoint(context.Background(), endpoint)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestService_Reactivate(t *testing.T) {
	_, st, s := newTestService(t)
	id := domain.EndpointID(uuid.New())

	st.EXPECT().ReactivateEndpoint(gomock.Any(), id).Return(&domain.WebhookEndpoint{ID: id, IsActive: true}, nil)
	res, err := s.Reactivate(context.Background(), id)
	require.NoError(t, err)
	require.True(t, res.IsActive)

	st.EXPECT().ReactivateEndpoint(gomock.Any(), id).Return(nil, nil)
	_, err = s.Reactivate(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Dispatch(t *testing.T) {
	ctrl, st, s := newTestService(t)

	e1 := domain.WebhookEndpoint{ID: domain.EndpointID(uuid.New()), IsActive: true}
	e2 := domain.WebhookEndpoint{ID: domain.EndpointID(uuid.New()), IsActive: true}

	var jobs []webhook.DeliveryJobArgs
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubscribedEndpoints(gomock.Any(), domain.EventApplicationCreated).
			Return([]domain.WebhookEndpoint{e1, e2}, nil)
		tx.EXPECT().StoreDeliveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ds []domain.WebhookDelivery) ([]domain.WebhookDelivery, error) {
				require.Len(t, ds, 2)
				for i := range ds {
					require.Equal(t, 1, ds[i].Attempts)
					require.True(t, ds[i].DeliveredAt.IsZero())
					require.Equal(t, domain.EventApplicationCreated, ds[i].EventType)
					require.JSONEq(t, `{"id":7,"candidate":"Ada"}`, string(ds[i].Payload))
					ds[i].ID = domain.DeliveryID(uuid.New())
				}

				return ds, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(webhook.DeliveryJobArgs)
				require.True(t, ok)
				require.Equal(t, webhook.QueueWebhooks, job.InsertOpts().Queue)
				require.Equal(t, 4, job.InsertOpts().MaxAttempts)
				jobs = append(jobs, job)

				return true, nil
			},
		).Times(2)
	})

	res, err := s.Dispatch(context.Background(), domain.EventApplicationCreated, map[string]any{
		"candidate": "Ada",
		"id":        7,
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, res[0].EndpointID, e1.ID)
	require.Equal(t, res[1].EndpointID, e2.ID)
	require.Equal(t, res[0].ID, jobs[0].DeliveryID)
	require.Equal(t, res[1].ID, jobs[1].DeliveryID)

	// job arguments only carry the delivery id
	raw, err := json.Marshal(jobs[0])
	require.NoError(t, err)
	require.JSONEq(t, `{"delivery_id":"`+res[0].ID.String()+`"}`, string(raw))
}

func TestService_Dispatch_NoSubscribers(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubscribedEndpoints(gomock.Any(), domain.EventOfferDeclined).Return(nil, nil)
	})

	res, err := s.Dispatch(context.Background(), domain.EventOfferDeclined, json.RawMessage(`{}`))
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestService_Dispatch_Rejects(t *testing.T) {
	_, _, s := newTestService(t)

	_, err := s.Dispatch(context.Background(), "candidate.deleted", map[string]any{})
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = s.Dispatch(context.Background(), domain.EventOfferSent, json.RawMessage(`{"broken"`))
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestService_Dispatch_RollsBackOnJobError(t *testing.T) {
	ctrl, st, s := newTestService(t)
	errQueue := errors.New("queue down")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubscribedEndpoints(gomock.Any(), gomock.Any()).
			Return([]domain.WebhookEndpoint{{ID: domain.EndpointID(uuid.New())}}, nil)
		tx.EXPECT().StoreDeliveries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ds []domain.WebhookDelivery) ([]domain.WebhookDelivery, error) {
				return ds, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errQueue)
	})

	_, err := s.Dispatch(context.Background(), domain.EventOfferSent, map[string]any{"id": 1})
	require.ErrorIs(t, err, errQueue)
}

func TestService_RetryDelivery(t *testing.T) {
	ctrl, st, s := newTestService(t)
	id := domain.DeliveryID(uuid.New())

	st.EXPECT().DeliveryByID(gomock.Any(), id).Return(&domain.WebhookDelivery{ID: id, Attempts: 4}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateDelivery(gomock.Any(), id, storage.DeliveryUpdates{IncrementAttempts: true}).
			Return(&domain.WebhookDelivery{ID: id, Attempts: 5}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				require.Equal(t, id, args.(webhook.DeliveryJobArgs).DeliveryID)

				return true, nil
			},
		)
	})

	res, err := s.RetryDelivery(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 5, res.Attempts)
}

func TestService_RetryDelivery_PendingJob(t *testing.T) {
	ctrl, st, s := newTestService(t)
	id := domain.DeliveryID(uuid.New())

	st.EXPECT().DeliveryByID(gomock.Any(), id).Return(&domain.WebhookDelivery{ID: id, Attempts: 1}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateDelivery(gomock.Any(), id, storage.DeliveryUpdates{IncrementAttempts: true}).
			Return(&domain.WebhookDelivery{ID: id, Attempts: 2}, nil)
		// the scheduled retry of the first job is still waiting
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	res, err := s.RetryDelivery(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "pending attempt")
	require.Nil(t, res)
}

func TestDeliveryJobArgs_InsertOpts(t *testing.T) {
	opts := webhook.DeliveryJobArgs{DeliveryID: domain.DeliveryID(uuid.New())}.InsertOpts()

	require.Equal(t, webhook.QueueWebhooks, opts.Queue)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.ElementsMatch(t, []rivertype.JobState{
		rivertype.JobStateAvailable,
		rivertype.JobStatePending,
		rivertype.JobStateRetryable,
		rivertype.JobStateRunning,
		rivertype.JobStateScheduled,
	}, opts.UniqueOpts.ByState)
}

func TestService_RetryDelivery_AlreadyDelivered(t *testing.T) {
	_, st, s := newTestService(t)
	id := domain.DeliveryID(uuid.New())

	// no UpdateDelivery or AddJob expectation: attempts must stay unchanged
	st.EXPECT().DeliveryByID(gomock.Any(), id).Return(&domain.WebhookDelivery{
		ID:          id,
		Attempts:    2,
		DeliveredAt: time.Now(),
	}, nil)

	_, err := s.RetryDelivery(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestService_RetryDelivery_DeliveredConcurrently(t *testing.T) {
	ctrl, st, s := newTestService(t)
	id := domain.DeliveryID(uuid.New())

	st.EXPECT().DeliveryByID(gomock.Any(), id).Return(&domain.WebhookDelivery{ID: id, Attempts: 1}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateDelivery(gomock.Any(), id, gomock.Any()).Return(nil, nil)
	})

	_, err := s.RetryDelivery(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestService_RetryDelivery_NotFound(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DeliveryByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.RetryDelivery(context.Background(), domain.DeliveryID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRetryDelay(t *testing.T) {
	base := time.Minute

	require.Equal(t, 60*time.Second, webhook.RetryDelay(1, base))
	require.Equal(t, 120*time.Second, webhook.RetryDelay(2, base))
	require.Equal(t, 240*time.Second, webhook.RetryDelay(3, base))
	require.Equal(t, 240*time.Second, webhook.RetryDelay(7, base))
	require.Equal(t, 60*time.Second, webhook.RetryDelay(0, base))
}
