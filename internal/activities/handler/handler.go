package handler

import (
	"github.com/gin-gonic/gin"

	"refuge_backend/internal/activities/repository"
	"refuge_backend/internal/activities/service"
	"refuge_backend/internal/activities/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Search lists audit entries. GET /admin/activities
func (h *Handler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.EntryResponse, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, toResponse(e))
	}
	httpkit.OK(c, search.Result[transport.EntryResponse]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

func toResponse(e repository.Entry) transport.EntryResponse {
	return transport.EntryResponse{
		ID:           e.ID,
		Actor:        e.Actor,
		ActorName:    e.ActorName,
		Action:       string(e.Action),
		ResourceType: string(e.ResourceType),
		ResourceID:   e.ResourceID,
		ChangedKeys:  e.ChangedKeys,
		Before:       e.Before,
		After:        e.After,
		CreatedAt:    e.CreatedAt,
	}
}
