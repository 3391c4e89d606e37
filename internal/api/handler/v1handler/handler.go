// Package v1handler implements the operator API served under /v1.
package v1handler

import (
	"atsconnect/internal/hris"
	"atsconnect/internal/integration"
	"atsconnect/internal/jobboard"
	"atsconnect/internal/webhook"
	"atsconnect/pkg/controller"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const defaultMaxBodyBytes = 1 << 20

type Deps struct {
	Integrations integration.Registry
	Webhooks     webhook.Service
	JobBoard     jobboard.Service
	HRIS         hris.Service
}

type Handler struct {
	deps         Deps
	validate     *validator.Validate
	maxBodyBytes int64
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:         deps,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// Routes registers the v1 operations on router.
func (h *Handler) Routes(router chi.Router) {
	router.Route("/integrations", func(r chi.Router) {
		r.Post("/", h.createIntegration)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getIntegration)
			r.Put("/config", h.updateConfig)
			r.Post("/token/refresh", h.refreshToken)
			r.Post("/postings", h.postJob)
			r.Put("/postings/{requisitionId}", h.updateJob)
			r.Delete("/postings/{requisitionId}", h.closeJob)
			r.Post("/applications/import", h.importApplications)
			r.Post("/employees", h.syncEmployee)
			r.Post("/departments", h.syncDepartment)
		})
	})
	router.Post("/webhooks", h.registerWebhook)
	router.Post("/webhooks/{id}/reactivate", h.reactivateWebhook)
	router.Post("/events", h.dispatchEvent)
	router.Post("/deliveries/{id}/retry", h.retryDelivery)
}

// decode reads the JSON request body into v. It reports false once the error
// response has been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := controller.DecodeJSON(r, v, h.maxBodyBytes); err != nil {
		controller.WriteError(r.Context(), w, err)

		return false
	}

	return true
}

// pathID parses the uuid path parameter name, writing a 404 when it is not one.
func pathID[T ~[16]byte](w http.ResponseWriter, r *http.Request, name string) (T, bool) {
	ID, err := domain.ParseID[T](chi.URLParam(r, name))
	if err != nil {
		controller.WriteError(r.Context(), w, controller.InvalidParam(name, err))

		return ID, false
	}

	return ID, true
}

func badRequest(err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
}
