package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/auth"
	"github.com/jmcardoso/penny/internal/category"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/recurring", h.listRecurring)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createCategoryRequest struct {
	Name            string                   `json:"name"`
	Type            category.Type            `json:"type"`
	Icon            string                   `json:"icon"`
	Color           string                   `json:"color"`
	Description     string                   `json:"description"`
	TransactionType category.TransactionType `json:"transactionType"`
	Frequency       *category.Frequency      `json:"frequency,omitempty"`
	DefaultAmount   *int64                   `json:"defaultAmount,omitempty"`
	IsActive        *bool                    `json:"isActive,omitempty"`
	Budget          *int64                   `json:"budget,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := category.CreateParams{
		Name:            req.Name,
		Type:            req.Type,
		Icon:            req.Icon,
		Color:           req.Color,
		Description:     req.Description,
		TransactionType: req.TransactionType,
		Frequency:       req.Frequency,
		DefaultAmount:   req.DefaultAmount,
		IsActive:        req.IsActive,
		Budget:          req.Budget,
	}

	// Admin-created categories are shared defaults with no owner.
	if id.IsAdmin() {
		params.IsDefault = true
	} else {
		params.CreatedBy = &id.UserID
	}

	c, err := h.svc.Create(r.Context(), params)
	if err != nil {
		var verr *category.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	filter := category.ListFilter{}

	if !id.IsAdmin() {
		filter.VisibleTo = &id.UserID
	}

	switch r.URL.Query().Get("showDefault") {
	case "true":
		filter.IsDefault = ptr(true)
	case "false":
		filter.IsDefault = ptr(false)

		if !id.IsAdmin() {
			filter.VisibleTo = nil
			filter.CreatedBy = &id.UserID
		}
	}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = ptr(category.Type(s))
	}

	cats, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(cats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRecurring(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	filter := category.RecurringFilter{CreatedBy: id.UserID}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = ptr(category.Type(s))
	}

	switch r.URL.Query().Get("isActive") {
	case "true":
		filter.IsActive = ptr(true)
	case "false":
		filter.IsActive = ptr(false)
	}

	cats, err := h.svc.ListRecurring(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(cats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if !callerID.IsAdmin() && !c.IsDefault && (c.CreatedBy == nil || *c.CreatedBy != callerID.UserID) {
		http.Error(w, "access denied", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCategoryRequest struct {
	Name            *string                   `json:"name,omitempty"`
	Type            *category.Type            `json:"type,omitempty"`
	Icon            *string                   `json:"icon,omitempty"`
	Color           *string                   `json:"color,omitempty"`
	Description     *string                   `json:"description,omitempty"`
	TransactionType *category.TransactionType `json:"transactionType,omitempty"`
	Frequency       *category.Frequency       `json:"frequency,omitempty"`
	DefaultAmount   *int64                    `json:"defaultAmount,omitempty"`
	IsActive        *bool                     `json:"isActive,omitempty"`
	Budget          *int64                    `json:"budget,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), id, category.UpdateParams{
		Name:            req.Name,
		Type:            req.Type,
		Icon:            req.Icon,
		Color:           req.Color,
		Description:     req.Description,
		TransactionType: req.TransactionType,
		Frequency:       req.Frequency,
		DefaultAmount:   req.DefaultAmount,
		IsActive:        req.IsActive,
		Budget:          req.Budget,
	}, callerID.UserID, callerID.IsAdmin())
	if err != nil {
		var verr *category.ValidationError

		switch {
		case errors.As(err, &verr):
			http.Error(w, verr.Error(), http.StatusBadRequest)
		case errors.Is(err, category.ErrNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		case errors.Is(err, category.ErrPermissionDenied):
			http.Error(w, "not authorized to update this category", http.StatusForbidden)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, callerID.UserID, callerID.IsAdmin()); err != nil {
		switch {
		case errors.Is(err, category.ErrNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		case errors.Is(err, category.ErrPermissionDenied):
			http.Error(w, "not authorized to delete this category", http.StatusForbidden)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ptr[T any](v T) *T { return &v }
