// Package receiver accepts webhooks sent by providers to
// /integrations/receive/{integration_id}/, verifies their signature against
// the integration's webhook secret and routes them by integration category.
package receiver

import (
	"atsconnect/internal/config"
	"atsconnect/internal/integration"
	"atsconnect/pkg/controller"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/metrics"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/signature"
	"atsconnect/pkg/storage"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Path is the route the receiver is mounted on.
const Path = "/integrations/receive/{integration_id}/"

// Event is a verified inbound webhook.
type Event struct {
	Integration domain.Integration
	// Type comes from the body "event" field, or the X-Event-Type header.
	Type string
	// Data is the body "data" object, or the whole body when there is none.
	Data map[string]any
	Raw  json.RawMessage
}

// Handler processes the events of one integration category.
type Handler func(ctx context.Context, event Event) error

type Options struct {
	ReplayWindow time.Duration
	MaxBodyBytes int64
	Metrics      *metrics.Recorder
	// Bus receives domain events for new applications. Optional.
	Bus EventBus.Bus
}

func NewOptions(cfg *config.Config, recorder *metrics.Recorder, bus EventBus.Bus) Options {
	return Options{
		ReplayWindow: cfg.Receiver.ReplayWindow,
		MaxBodyBytes: cfg.Receiver.MaxBodyBytes,
		Metrics:      recorder,
		Bus:          bus,
	}
}

type Receiver struct {
	options      Options
	integrations integration.Registry
	handlers     map[domain.Category]Handler
	seen         *gocache.Cache
}

// New creates a Receiver routing job board and HRIS events into storage.
func New(integrations integration.Registry, storage storage.Storage, options Options) *Receiver {
	if options.ReplayWindow <= 0 {
		options.ReplayWindow = 10 * time.Minute
	}
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = 1 << 20
	}

	return &Receiver{
		options:      options,
		integrations: integrations,
		handlers: map[domain.Category]Handler{
			domain.CategoryJobBoard: jobBoardHandler(storage, options.Bus),
			domain.CategoryHRIS:     hrisHandler(storage),
		},
		seen: gocache.New(options.ReplayWindow, 2*options.ReplayWindow),
	}
}

// Routes registers the receiver on router.
func (rc *Receiver) Routes(router chi.Router) {
	router.Post(Path, rc.receive)
}

func (rc *Receiver) receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, rc.options.MaxBodyBytes)
	status, body := rc.handle(ctx, r)
	rc.options.Metrics.Inbound(ctx, status)

	controller.WriteJSON(ctx, w, status, body)
}

func (rc *Receiver) handle(ctx context.Context, r *http.Request) (int, any) {
	ID, err := domain.ParseID[domain.IntegrationID](chi.URLParam(r, "integration_id"))
	if err != nil {
		return http.StatusNotFound, errorBody("integration not found")
	}

	in, err := rc.integrations.Get(ctx, ID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return http.StatusNotFound, errorBody("integration not found")
		}
		logger.Error(ctx, "could not load integration", zap.Error(err))

		return http.StatusInternalServerError, errorBody("internal error")
	}
	if !in.IsActive {
		return http.StatusForbidden, errorBody("integration is not active")
	}

	ctx = logger.WithFields(ctx, zap.Stringer("integration_id", in.ID), zap.String("provider", string(in.Provider)))

	sig := r.Header.Get(signature.Header)
	if sig == "" {
		return http.StatusUnauthorized, errorBody("missing signature")
	}

	secret, err := rc.webhookSecret(ctx, *in)
	if err != nil {
		logger.Error(ctx, "inbound webhook misconfigured", zap.Error(err))

		return http.StatusInternalServerError, errorBody("internal error")
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, errorBody("body too large")
		}

		return http.StatusBadRequest, errorBody("could not read body")
	}

	if !signature.Verify(raw, secret, sig) {
		logger.Warn(ctx, "inbound webhook signature mismatch")

		return http.StatusUnauthorized, errorBody("invalid signature")
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return http.StatusBadRequest, errorBody("body must be a JSON object")
	}

	key := replayKey(in.ID, raw)
	if _, found := rc.seen.Get(key); found {
		logger.Debug(ctx, "inbound webhook replayed")

		return http.StatusOK, received()
	}

	event := newEvent(*in, r.Header.Get("X-Event-Type"), payload, raw)
	if handler, ok := rc.handlers[in.Category]; ok {
		if err := handler(ctx, event); err != nil {
			logger.Error(ctx, "could not handle inbound webhook", zap.String("event", event.Type), zap.Error(err))

			return http.StatusInternalServerError, errorBody("internal error")
		}
	}

	rc.seen.SetDefault(key, struct{}{})
	logger.Info(ctx, "inbound webhook received", zap.String("event", event.Type))

	return http.StatusOK, received()
}

func (rc *Receiver) webhookSecret(ctx context.Context, in domain.Integration) (string, error) {
	cfg, err := rc.integrations.Config(ctx, in)
	if err != nil {
		return "", err
	}

	secret := cfg.Get(domain.ConfigWebhookSecret)
	if secret == "" {
		return "", serrors.With(serrors.ErrConfiguration, "integration has no %s", domain.ConfigWebhookSecret)
	}

	return secret, nil
}

func newEvent(in domain.Integration, header string, payload map[string]any, raw []byte) Event {
	event := Event{Integration: in, Type: header, Data: payload, Raw: raw}

	if t, ok := payload["event"].(string); ok && t != "" {
		event.Type = t
	}
	if data, ok := payload["data"].(map[string]any); ok {
		event.Data = data
		if b, err := json.Marshal(data); err == nil {
			event.Raw = b
		}
	}

	return event
}

func replayKey(ID domain.IntegrationID, raw []byte) string {
	sum := sha256.Sum256(raw)

	return fmt.Sprintf("%s:%s", ID, hex.EncodeToString(sum[:]))
}

func errorBody(msg string) map[string]string { return map[string]string{"error": msg} }

func received() map[string]string { return map[string]string{"status": "received"} }
