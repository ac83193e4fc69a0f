package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/colors/repository"
	"refuge_backend/internal/colors/service"
	"refuge_backend/internal/colors/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search lists colors. GET /colors
func (h *Handler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.ColorResponse, 0, len(result.Items))
	for _, col := range result.Items {
		items = append(items, toResponse(col))
	}
	httpkit.OK(c, search.Result[transport.ColorResponse]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// Suggest powers the color autocomplete. GET /colors/suggestions?text=noir
func (h *Handler) Suggest(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])

	hits, err := h.svc.Suggest(c.Request.Context(), text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"colors": hits})
}

// Get returns one color. GET /colors/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	color, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(color))
}

// Create adds a color. POST /colors
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	color, err := h.svc.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(color))
}

// Update edits a color. PUT /colors/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	color, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(color))
}

// Delete removes a color; referenced colors yield a 409.
// DELETE /colors/:id
func (h *Handler) Delete(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity.UserID(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toResponse(col repository.Color) transport.ColorResponse {
	return transport.ColorResponse{
		ID:          col.ID,
		Name:        col.Name,
		AnimalCount: col.AnimalCount,
		CreatedAt:   col.CreatedAt,
		UpdatedAt:   col.UpdatedAt,
	}
}
