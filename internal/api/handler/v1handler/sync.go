package v1handler

import (
	"atsconnect/pkg/controller"
	"atsconnect/pkg/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type importRequest struct {
	Since time.Time `json:"since"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

type upsertResponse struct {
	ExternalID string `json:"externalId"`
}

func (h *Handler) postJob(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var requisition domain.Requisition
	if !h.decode(w, r, &requisition) {
		return
	}

	posting, err := h.deps.JobBoard.PostJob(r.Context(), requisition, ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusCreated, posting)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var requisition domain.Requisition
	if !h.decode(w, r, &requisition) {
		return
	}
	// the path names the posting
	requisition.ID = chi.URLParam(r, "requisitionId")

	posting, err := h.deps.JobBoard.UpdateJob(r.Context(), requisition, ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, posting)
}

func (h *Handler) closeJob(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	posting, err := h.deps.JobBoard.CloseJob(r.Context(), chi.URLParam(r, "requisitionId"), ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, posting)
}

func (h *Handler) importApplications(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var req importRequest
	if !h.decode(w, r, &req) {
		return
	}

	n, err := h.deps.JobBoard.ImportApplications(r.Context(), ID, req.Since)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, importResponse{Imported: n})
}

func (h *Handler) syncEmployee(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var employee domain.Employee
	if !h.decode(w, r, &employee) {
		return
	}

	externalID, err := h.deps.HRIS.SyncEmployee(r.Context(), employee, ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, upsertResponse{ExternalID: externalID})
}

func (h *Handler) syncDepartment(w http.ResponseWriter, r *http.Request) {
	ID, ok := pathID[domain.IntegrationID](w, r, "id")
	if !ok {
		return
	}

	var department domain.Department
	if !h.decode(w, r, &department) {
		return
	}

	externalID, err := h.deps.HRIS.SyncDepartment(r.Context(), department, ID)
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, upsertResponse{ExternalID: externalID})
}
