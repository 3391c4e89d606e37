package v1handler

import (
	"atsconnect/internal/integration"
	"atsconnect/pkg/controller"
	"atsconnect/pkg/domain"
	"net/http"
)

func (h *Handler) createIntegration(w http.ResponseWriter, r *http.Request) {
	var input integration.CreateInput
	if !h.decode(w, r, &input) {
		return
	}

	in, err := h.deps.Integrations.Create(r.Context(), input)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusCreated, in)
}

func (h *Handler) getIntegration(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	in, err := h.deps.Integrations.Get(r.Context(), ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, in)
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var cfg domain.IntegrationConfig
	if !h.decode(w, r, &cfg) {
		return
	}

	in, err := h.deps.Integrations.UpdateConfig(r.Context(), ID, cfg)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, in)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	in, err := h.deps.Integrations.RefreshOAuthToken(r.Context(), ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, in)
}
