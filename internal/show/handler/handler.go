package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/search"
	"refuge_backend/internal/show/repository"
	"refuge_backend/internal/show/service"
	"refuge_backend/internal/show/transport"
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

// Submit records a new application from the exhibitor portal.
// POST /show/applications
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	app, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toApplication(app))
}

// SearchApplications lists applications. GET /show/applications
func (h *Handler) SearchApplications(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseApplicationSearchParams(values)
	page := search.ParsePage(values, transport.ApplicationCountPerPage)

	result, err := h.svc.SearchApplications(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.ApplicationResponse, 0, len(result.Items))
	for _, app := range result.Items {
		items = append(items, toApplication(app))
	}
	httpkit.OK(c, search.Result[transport.ApplicationResponse]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// GetApplication returns one application. GET /show/applications/:id
func (h *Handler) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.svc.GetApplication(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toApplication(app))
}

// UpdateStatus validates or refuses an application.
// PUT /show/applications/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	app, err := h.svc.UpdateStatus(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toApplication(app))
}

// ListStandSizes returns the stand catalog. GET /show/stand-sizes
func (h *Handler) ListStandSizes(c *gin.Context) {
	sizes, err := h.svc.ListStandSizes(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.StandSizeResponse, 0, len(sizes))
	for _, s := range sizes {
		items = append(items, transport.StandSizeResponse{
			ID:       s.ID,
			Label:    s.Label,
			AreaM2:   s.AreaM2,
			Price:    s.Price,
			Position: s.Position,
		})
	}
	httpkit.OK(c, gin.H{"standSizes": items})
}

// ListExhibitors returns the floor plan. GET /show/exhibitors
func (h *Handler) ListExhibitors(c *gin.Context) {
	exhibitors, err := h.svc.ListExhibitors(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.ExhibitorResponse, 0, len(exhibitors))
	for _, e := range exhibitors {
		items = append(items, toExhibitor(e))
	}
	httpkit.OK(c, gin.H{"exhibitors": items})
}

// GetExhibitor returns one exhibitor. GET /show/exhibitors/:id
func (h *Handler) GetExhibitor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	exhibitor, err := h.svc.GetExhibitor(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toExhibitor(exhibitor))
}

// AssignStand places an exhibitor on the floor plan.
// PUT /show/exhibitors/:id/stand
func (h *Handler) AssignStand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.AssignStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	exhibitor, err := h.svc.AssignStand(c.Request.Context(), id, req.StandNumber)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toExhibitor(exhibitor))
}

// Badge serves the exhibitor badge QR code.
// GET /show/exhibitors/:id/badge
func (h *Handler) Badge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	png, err := h.svc.Badge(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toApplication(a repository.Application) transport.ApplicationResponse {
	return transport.ApplicationResponse{
		ID:             a.ID,
		StructureName:  a.StructureName,
		ContactName:    a.ContactName,
		Email:          a.Email,
		Phone:          a.Phone,
		WebsiteURL:     a.WebsiteURL,
		Description:    a.Description,
		StandSizeID:    a.StandSizeID,
		StandSizeLabel: a.StandSizeLabel,
		Targets:        a.Targets,
		Fields:         a.Fields,
		Status:         string(a.Status),
		RefusalMessage: a.RefusalMessage,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toExhibitor(e repository.Exhibitor) transport.ExhibitorResponse {
	return transport.ExhibitorResponse{
		ID:             e.ID,
		ApplicationID:  e.ApplicationID,
		StructureName:  e.StructureName,
		ContactName:    e.ContactName,
		Email:          e.Email,
		StandSizeID:    e.StandSizeID,
		StandSizeLabel: e.StandSizeLabel,
		StandNumber:    e.StandNumber,
		FolderKey:      e.FolderKey,
		CreatedAt:      e.CreatedAt,
	}
}
