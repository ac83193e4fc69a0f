package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/breeds/repository"
	"refuge_backend/internal/breeds/service"
	"refuge_backend/internal/breeds/transport"
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

// Search lists breeds. GET /breeds
func (h *Handler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.BreedResponse, 0, len(result.Items))
	for _, b := range result.Items {
		items = append(items, toResponse(b))
	}
	httpkit.OK(c, search.Result[transport.BreedResponse]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// Suggest powers the breed autocomplete, optionally scoped by species.
// GET /breeds/suggestions?text=lab&species=DOG
func (h *Handler) Suggest(c *gin.Context) {
	values := c.Request.URL.Query()
	text := search.ParseText(values["text"])
	species := search.ParseEnumSet(values["species"], domain.ParseSpecies)

	hits, err := h.svc.Suggest(c.Request.Context(), text, species)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"breeds": hits})
}

// Get returns one breed. GET /breeds/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	breed, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(breed))
}

// Create adds a breed. POST /breeds
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	breed, err := h.svc.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(breed))
}

// Update edits a breed. PUT /breeds/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	breed, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(breed))
}

// Delete removes a breed; referenced breeds yield a 409.
// DELETE /breeds/:id
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

func toResponse(b repository.Breed) transport.BreedResponse {
	return transport.BreedResponse{
		ID:          b.ID,
		Name:        b.Name,
		Species:     string(b.Species),
		AnimalCount: b.AnimalCount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
