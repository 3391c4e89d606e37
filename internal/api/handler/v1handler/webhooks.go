package v1handler

import (
	"atsconnect/internal/webhook"
	"atsconnect/pkg/controller"
	"atsconnect/pkg/domain"
	"encoding/json"
	"net/http"
)

// registeredEndpoint is the only response carrying the endpoint secret.
type registeredEndpoint struct {
	*domain.WebhookEndpoint

	Secret string `json:"secret"`
}

type dispatchRequest struct {
	Event   domain.EventType `json:"event"   validate:"required"`
	Payload json.RawMessage  `json:"payload" validate:"required"`
}

type dispatchResponse struct {
	Deliveries []domain.WebhookDelivery `json:"deliveries"`
}

func (h *Handler) registerWebhook(w http.ResponseWriter, r *http.Request) {
	var input webhook.RegisterInput
	if !h.decode(w, r, &input) {
		return
	}

	endpoint, err := h.deps.Webhooks.Register(r.Context(), input)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusCreated, registeredEndpoint{
		WebhookEndpoint: endpoint,
		Secret:          endpoint.Secret,
	})
}

func (h *Handler) reactivateWebhook(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.EndpointID](w, r, "id")
	if !ok {
		return
	}

	endpoint, err := h.deps.Webhooks.Reactivate(r.Context(), ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, endpoint)
}

func (h *Handler) dispatchEvent(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		controller.WriteError(r.Context(), w, badRequest(err))

		return
	}

	deliveries, err := h.deps.Webhooks.Dispatch(r.Context(), req.Event, req.Payload)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusAccepted, dispatchResponse{Deliveries: deliveries})
}

func (h *Handler) retryDelivery(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.DeliveryID](w, r, "id")
	if !ok {
		return
	}

	delivery, err := h.deps.Webhooks.RetryDelivery(r.Context(), ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusAccepted, delivery)
}
