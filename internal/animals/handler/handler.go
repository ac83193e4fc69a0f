package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refuge_backend/internal/animals/repository"
	"refuge_backend/internal/animals/service"
	"refuge_backend/internal/animals/transport"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
	msgForbiddenFilter  = "filter not allowed for this account"
)

const maxPhotoBytes = 10 << 20

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search lists animals. GET /animals
// The vaccination dimension is reserved to admins and veterinarians; anyone
// else requesting it gets a 403 before the search runs.
func (h *Handler) Search(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	values := c.Request.URL.Query()
	params := transport.ParseSearchParams(values)
	if !params.Vaccination.IsEmpty() || params.Sort == transport.SortVaccination {
		if !identity.HasAnyGroup(auth.GroupAdmin, auth.GroupVeterinarian) {
			httpkit.Error(c, http.StatusForbidden, msgForbiddenFilter, nil)
			return
		}
	}
	page := search.ParsePage(values, transport.CountPerPage)

	result, err := h.svc.Search(c.Request.Context(), params, page)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.AnimalCard, 0, len(result.Items))
	for _, card := range result.Items {
		items = append(items, toCard(card))
	}
	httpkit.OK(c, search.Result[transport.AnimalCard]{
		TotalCount: result.TotalCount,
		PageCount:  result.PageCount,
		Items:      items,
	})
}

// SuggestPickUpLocations powers the pick-up location input.
// GET /animals/pick-up-locations/suggestions
func (h *Handler) SuggestPickUpLocations(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])

	hits, err := h.svc.SuggestPickUpLocations(c.Request.Context(), text)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"pickUpLocations": hits})
}

// Get returns one animal with its photos. GET /animals/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	animal, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	photos, err := h.svc.ListPhotos(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(animal, photos))
}

// Create adds an animal. POST /animals
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	animal, err := h.svc.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(animal, nil))
}

// Update edits an animal. PUT /animals/:id
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	animal, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(animal, nil))
}

// Delete removes an animal and its photos. DELETE /animals/:id
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

// UploadPhoto registers a photo on an animal. POST /animals/:id/photos
func (h *Handler) UploadPhoto(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing photo file", nil)
		return
	}
	if file.Size > maxPhotoBytes {
		httpkit.Error(c, http.StatusBadRequest, "photo too large", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	photo, err := h.svc.UploadPhoto(c.Request.Context(), identity.UserID(), id,
		file.Filename, file.Header.Get("Content-Type"), data)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toPhoto(photo))
}

// DeletePhoto removes one photo. DELETE /animals/:id/photos/:photoId
func (h *Handler) DeletePhoto(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if err := h.svc.DeletePhoto(c.Request.Context(), identity.UserID(), id, photoID); httpkit.HandleError(c, err) {
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

func toCard(card repository.Card) transport.AnimalCard {
	return transport.AnimalCard{
		ID:             card.ID,
		Name:           card.Name,
		Species:        string(card.Species),
		BreedName:      card.BreedName,
		Status:         string(card.Status),
		Gender:         string(card.Gender),
		BirthDate:      card.BirthDate,
		PickUpDate:     card.PickUpDate,
		PickUpLocation: card.PickUpLocation,
		NextVaccineDue: card.NextVaccineDue,
		PhotoKey:       card.PhotoKey,
	}
}

func toPhoto(p repository.Photo) transport.Photo {
	return transport.Photo{ID: p.ID, Key: p.Key, TakenAt: p.TakenAt, CreatedAt: p.CreatedAt}
}

func toResponse(a repository.Animal, photos []repository.Photo) transport.AnimalResponse {
	out := transport.AnimalResponse{
		ID:             a.ID,
		Name:           a.Name,
		Alias:          a.Alias,
		Species:        string(a.Species),
		BreedID:        a.BreedID,
		BreedName:      a.BreedName,
		ColorID:        a.ColorID,
		ColorName:      a.ColorName,
		Gender:         string(a.Gender),
		BirthDate:      a.BirthDate,
		Status:         string(a.Status),
		PickUpDate:     a.PickUpDate,
		PickUpLocation: a.PickUpLocation,
		PickUpReason:   a.PickUpReason,
		ManagerID:      a.ManagerID,
		FosterFamilyID: a.FosterFamilyID,
		Sterilization:  string(a.Sterilization),
		NextVaccineDue: a.NextVaccineDue,
		AdoptionDate:   a.AdoptionDate,
		Description:    a.Description,
		Photos:         make([]transport.Photo, 0, len(photos)),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	for _, p := range photos {
		out.Photos = append(out.Photos, toPhoto(p))
	}
	return out
}
