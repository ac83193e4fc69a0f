package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/search"
	"refuge_backend/internal/users/repository"
	"refuge_backend/internal/users/service"
	"refuge_backend/internal/users/transport"
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

// Search lists members. GET /users
func (h *Handler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.UserCard, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, transport.UserCard{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			Groups:      u.Groups,
			Archived:    u.Archived,
		})
	}
	httpkit.OK(c, search.Result[transport.UserCard]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// Suggest powers the manager autocomplete. GET /users/suggestions
func (h *Handler) Suggest(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])

	hits, err := h.svc.Suggest(c.Request.Context(), text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"users": hits})
}

// Get returns one member. GET /users/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(user))
}

// Create adds a member. POST /admin/users
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, err := h.svc.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(user))
}

// Update edits a member. PUT /admin/users/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(user))
}

// SetGroups replaces a member's groups. PUT /admin/users/:id/groups
func (h *Handler) SetGroups(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.SetGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, err := h.svc.SetGroups(c.Request.Context(), identity.UserID(), id, req.Groups)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(user))
}

// Archive disables a member account. POST /admin/users/:id/archive
func (h *Handler) Archive(c *gin.Context) {
	h.setArchived(c, true)
}

// Restore re-enables a member account. POST /admin/users/:id/restore
func (h *Handler) Restore(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *Handler) setArchived(c *gin.Context, archived bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.svc.SetArchived(c.Request.Context(), identity.UserID(), id, archived)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(user))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toResponse(u repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName,
		Groups:      u.Groups,
		Archived:    u.Archived,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
