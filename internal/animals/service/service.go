package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/animals/repository"
	"refuge_backend/internal/animals/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/events"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/sanitize"
)

// indexAnimals is the fuzzy index holding animal documents (name and alias).
const indexAnimals = "animals"

// PhotoStorage stores uploaded photo files.
type PhotoStorage interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	Remove(ctx context.Context, bucket, key string) error
}

// TakenAtExtractor reads a capture timestamp from photo bytes, nil when the
// file carries none.
type TakenAtExtractor func(data []byte) *time.Time

type Service struct {
	repo        *repository.Repository
	fuzzy       search.Fuzzy
	recorder    audit.Recorder
	storage     PhotoStorage
	photoBucket string
	takenAt     TakenAtExtractor
	bus         events.Bus
	log         *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, storage PhotoStorage, photoBucket string, takenAt TakenAtExtractor, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		fuzzy:       fuzzy,
		recorder:    recorder,
		storage:     storage,
		photoBucket: photoBucket,
		takenAt:     takenAt,
		bus:         bus,
		log:         log,
	}
}

func (s *Service) Create(ctx context.Context, actor uuid.UUID, req transport.CreateAnimalRequest) (repository.Animal, error) {
	animal, err := fromRequest(req)
	if err != nil {
		return repository.Animal{}, err
	}

	created, err := s.repo.Create(ctx, animal)
	if err != nil {
		return repository.Animal{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourceAnimal,
		ResourceID:   created.ID,
		After:        created,
	})
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Animal, error) {
	animal, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Animal{}, apperr.NotFound("animal not found")
	}
	return animal, err
}

func (s *Service) Update(ctx context.Context, actor, id uuid.UUID, req transport.UpdateAnimalRequest) (repository.Animal, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.Animal{}, err
	}

	animal, err := fromRequest(req)
	if err != nil {
		return repository.Animal{}, err
	}
	updated, err := s.repo.Update(ctx, id, animal)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Animal{}, apperr.NotFound("animal not found")
	}
	if err != nil {
		return repository.Animal{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceAnimal,
		ResourceID:   updated.ID,
		Before:       before,
		After:        updated,
	})

	if s.bus != nil && managerChanged(before.ManagerID, updated.ManagerID) {
		s.bus.Publish(ctx, domain.AnimalAssigned{
			BaseEvent:  events.NewBaseEvent(),
			AnimalID:   updated.ID,
			AnimalName: updated.Name,
			ManagerID:  *updated.ManagerID,
		})
	}
	return updated, nil
}

func managerChanged(before, after *uuid.UUID) bool {
	if after == nil {
		return false
	}
	return before == nil || *before != *after
}

func (s *Service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	keys, err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("animal not found")
	}
	if err != nil {
		return err
	}

	// Storage cleanup is best-effort; the rows are already gone.
	for _, key := range keys {
		if err := s.storage.Remove(ctx, s.photoBucket, key); err != nil {
			s.log.Warn("orphaned photo object", "key", key, "error", err)
		}
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionDelete,
		ResourceType: audit.ResourceAnimal,
		ResourceID:   id,
		Before:       before,
	})
	return nil
}

// Search lists animals as cards. A text query is resolved by the fuzzy index
// with the species dimension forwarded as a scoping hint; ranking order then
// replaces the declared sort. Index failure degrades to an empty result.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.Card], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexAnimals, params.Text, speciesFilter(params.Species), search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexAnimals, err)
			return search.EmptyResult[repository.Card](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.Card](), nil
		}
		rankedIDs = ids
	}
	return s.repo.Search(ctx, params, rankedIDs, page)
}

// SuggestPickUpLocations powers the pick-up location input. Locations are
// free text with no fuzzy index document, so suggestions come from the
// stored distinct values; unknown typed text yields a synthetic entry
// offering to create it.
func (s *Service) SuggestPickUpLocations(ctx context.Context, text string) ([]search.Suggestion, error) {
	values, err := s.repo.DistinctPickUpLocations(ctx)
	if err != nil {
		return nil, err
	}
	return search.SuggestFromValues(values, text, search.MaxSuggestions), nil
}

// UploadPhoto stores the file and registers it on the animal, reading the
// capture timestamp from EXIF metadata when present.
func (s *Service) UploadPhoto(ctx context.Context, actor, animalID uuid.UUID, filename, contentType string, data []byte) (repository.Photo, error) {
	if _, err := s.Get(ctx, animalID); err != nil {
		return repository.Photo{}, err
	}
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return repository.Photo{}, apperr.Validation("unsupported photo format")
	}

	key := fmt.Sprintf("animals/%s/%s%s", animalID, uuid.New(), ext)
	if err := s.storage.Upload(ctx, s.photoBucket, key, contentType, data); err != nil {
		return repository.Photo{}, fmt.Errorf("upload photo: %w", err)
	}

	var takenAt *time.Time
	if s.takenAt != nil {
		takenAt = s.takenAt(data)
	}

	photo, err := s.repo.AddPhoto(ctx, animalID, key, takenAt)
	if err != nil {
		// Row insert failed after upload: drop the orphaned object.
		_ = s.storage.Remove(ctx, s.photoBucket, key)
		return repository.Photo{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceAnimal,
		ResourceID:   animalID,
		After:        map[string]any{"photoAdded": key},
	})
	return photo, nil
}

func (s *Service) ListPhotos(ctx context.Context, animalID uuid.UUID) ([]repository.Photo, error) {
	return s.repo.ListPhotos(ctx, animalID)
}

func (s *Service) DeletePhoto(ctx context.Context, actor, animalID, photoID uuid.UUID) error {
	key, err := s.repo.DeletePhoto(ctx, animalID, photoID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("photo not found")
	}
	if err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, s.photoBucket, key); err != nil {
		s.log.Warn("orphaned photo object", "key", key, "error", err)
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceAnimal,
		ResourceID:   animalID,
		Before:       map[string]any{"photoRemoved": key},
	})
	return nil
}

// speciesFilter renders the species hint in the index filter syntax.
func speciesFilter(species search.EnumSet[domain.Species]) string {
	if species.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, species.Len())
	for _, sp := range species.Values() {
		parts = append(parts, fmt.Sprintf("species = %s", sp))
	}
	return strings.Join(parts, " OR ")
}

func fromRequest(req transport.CreateAnimalRequest) (repository.Animal, error) {
	species, ok := domain.ParseSpecies(req.Species)
	if !ok {
		return repository.Animal{}, apperr.Validation("unknown species")
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return repository.Animal{}, apperr.Validation("unknown status")
	}
	gender, ok := domain.ParseGender(req.Gender)
	if !ok {
		return repository.Animal{}, apperr.Validation("unknown gender")
	}
	sterilization, ok := domain.ParseSterilization(req.Sterilization)
	if !ok {
		return repository.Animal{}, apperr.Validation("unknown sterilization")
	}

	birthDate, err := parseDate(req.BirthDate, "birthDate")
	if err != nil {
		return repository.Animal{}, err
	}
	pickUpDate, err := parseDate(req.PickUpDate, "pickUpDate")
	if err != nil {
		return repository.Animal{}, err
	}
	nextVaccineDue, err := parseDate(req.NextVaccineDue, "nextVaccineDue")
	if err != nil {
		return repository.Animal{}, err
	}
	adoptionDate, err := parseDate(req.AdoptionDate, "adoptionDate")
	if err != nil {
		return repository.Animal{}, err
	}

	return repository.Animal{
		Name:           sanitize.Text(req.Name),
		Alias:          sanitize.Text(req.Alias),
		Species:        species,
		BreedID:        req.BreedID,
		ColorID:        req.ColorID,
		Gender:         gender,
		BirthDate:      birthDate,
		Status:         status,
		PickUpDate:     pickUpDate,
		PickUpLocation: sanitize.Text(req.PickUpLocation),
		PickUpReason:   sanitize.Text(req.PickUpReason),
		ManagerID:      req.ManagerID,
		FosterFamilyID: req.FosterFamilyID,
		Sterilization:  sterilization,
		NextVaccineDue: nextVaccineDue,
		AdoptionDate:   adoptionDate,
		Description:    sanitize.Text(req.Description),
	}, nil
}

// parseDate parses an optional request date. Unlike query string parsing,
// bad request-body dates are a validation error, not a silent default.
func parseDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(search.DateLayout, *s)
	if err != nil {
		return nil, apperr.Validation("invalid date for " + field)
	}
	return &t, nil
}
