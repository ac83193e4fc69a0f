package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/fosterfamilies/repository"
	"refuge_backend/internal/fosterfamilies/service"
	"refuge_backend/internal/fosterfamilies/transport"
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

// Search lists foster families. GET /foster-families
func (h *Handler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.FosterFamilyCard, 0, len(result.Items))
	for _, f := range result.Items {
		items = append(items, toCard(f))
	}
	httpkit.OK(c, search.Result[transport.FosterFamilyCard]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// Suggest powers the family autocomplete. GET /foster-families/suggestions
func (h *Handler) Suggest(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])

	hits, err := h.svc.Suggest(c.Request.Context(), text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"fosterFamilies": hits})
}

// Get returns one family. GET /foster-families/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	family, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(family))
}

// Create adds a family. POST /foster-families
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateFosterFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	family, err := h.svc.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(family))
}

// Update edits a family. PUT /foster-families/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateFosterFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	family, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(family))
}

// Delete removes a family. DELETE /foster-families/:id
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

func toCard(f repository.FosterFamily) transport.FosterFamilyCard {
	return transport.FosterFamilyCard{
		ID:            f.ID,
		DisplayName:   f.DisplayName,
		City:          f.City,
		ZipCode:       f.ZipCode,
		SpeciesToHost: f.SpeciesToHost,
		Availability:  string(f.Availability),
		AnimalCount:   f.AnimalCount,
	}
}

func toResponse(f repository.FosterFamily) transport.FosterFamilyResponse {
	return transport.FosterFamilyResponse{
		ID:            f.ID,
		DisplayName:   f.DisplayName,
		Email:         f.Email,
		Phone:         f.Phone,
		Address:       f.Address,
		ZipCode:       f.ZipCode,
		City:          f.City,
		SpeciesToHost: f.SpeciesToHost,
		Availability:  string(f.Availability),
		Comments:      f.Comments,
		AnimalCount:   f.AnimalCount,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
