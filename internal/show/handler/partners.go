package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"refuge_backend/internal/search"
	"refuge_backend/internal/show/repository"
	"refuge_backend/internal/show/transport"
	"refuge_backend/platform/httpkit"
)

// SearchPartners lists partners. GET /show/partners
func (h *Handler) SearchPartners(c *gin.Context) {
	values := c.Request.URL.Query()
	params := transport.ParsePartnerSearchParams(values)
	page := search.ParsePage(values, transport.PartnerCountPerPage)

	result, err := h.svc.SearchPartners(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.PartnerResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toPartner(p))
	}
	httpkit.OK(c, search.Result[transport.PartnerResponse]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// SuggestPartners powers the partner autocomplete.
// GET /show/partners/suggestions
func (h *Handler) SuggestPartners(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])

	hits, err := h.svc.SuggestPartners(c.Request.Context(), text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"partners": hits})
}

// GetPartner returns one partner. GET /show/partners/:id
func (h *Handler) GetPartner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partner, err := h.svc.GetPartner(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toPartner(partner))
}

// CreatePartner adds a partner. POST /show/partners
func (h *Handler) CreatePartner(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	partner, err := h.svc.CreatePartner(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toPartner(partner))
}

// UpdatePartner edits a partner. PUT /show/partners/:id
func (h *Handler) UpdatePartner(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	partner, err := h.svc.UpdatePartner(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toPartner(partner))
}

// DeletePartner removes a partner. DELETE /show/partners/:id
func (h *Handler) DeletePartner(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePartner(c.Request.Context(), identity.UserID(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

func toPartner(p repository.Partner) transport.PartnerResponse {
	return transport.PartnerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   string(p.Category),
		WebsiteURL: p.WebsiteURL,
		LogoKey:    p.LogoKey,
		Visible:    p.Visible,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
