package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	animaldomain "refuge_backend/internal/animals/domain"
	"refuge_backend/internal/fosterfamilies/domain"
	"refuge_backend/internal/fosterfamilies/repository"
	"refuge_backend/internal/fosterfamilies/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/phone"
	"refuge_backend/platform/sanitize"
)

// indexFosterFamilies is the fuzzy index holding family documents.
const indexFosterFamilies = "fosterFamilies"

type Service struct {
	repo     *repository.Repository
	fuzzy    search.Fuzzy
	recorder audit.Recorder
	log      *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger) *Service {
	return &Service{repo: repo, fuzzy: fuzzy, recorder: recorder, log: log}
}

func (s *Service) Create(ctx context.Context, actor uuid.UUID, req transport.CreateFosterFamilyRequest) (repository.FosterFamily, error) {
	candidate, err := fromRequest(req)
	if err != nil {
		return repository.FosterFamily{}, err
	}

	family, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return repository.FosterFamily{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourceFosterFamily,
		ResourceID:   family.ID,
		After:        family,
	})
	return family, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.FosterFamily, error) {
	family, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.FosterFamily{}, apperr.NotFound("foster family not found")
	}
	return family, err
}

func (s *Service) Update(ctx context.Context, actor, id uuid.UUID, req transport.UpdateFosterFamilyRequest) (repository.FosterFamily, error) {
	candidate, err := fromRequest(req)
	if err != nil {
		return repository.FosterFamily{}, err
	}
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.FosterFamily{}, err
	}

	family, err := s.repo.Update(ctx, id, candidate)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.FosterFamily{}, apperr.NotFound("foster family not found")
	}
	if err != nil {
		return repository.FosterFamily{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceFosterFamily,
		ResourceID:   family.ID,
		Before:       before,
		After:        family,
	})
	return family, nil
}

// Delete removes a family. Animals it hosted are detached, not deleted.
func (s *Service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("foster family not found")
	}
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionDelete,
		ResourceType: audit.ResourceFosterFamily,
		ResourceID:   id,
		Before:       before,
	})
	return nil
}

// Search lists families; a text query is resolved by the fuzzy index.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.FosterFamily], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexFosterFamilies, params.Text, "", search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexFosterFamilies, err)
			return search.EmptyResult[repository.FosterFamily](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.FosterFamily](), nil
		}
		rankedIDs = ids
	}
	return s.repo.Search(ctx, params, rankedIDs, page)
}

// Suggest powers the family autocomplete used when placing animals.
func (s *Service) Suggest(ctx context.Context, text string) ([]transport.SuggestionResponse, error) {
	hits, err := s.fuzzy.Suggest(ctx, indexFosterFamilies, text, "", search.MaxSuggestions, []string{"displayName"})
	if err != nil {
		s.log.SearchIndexDegraded(indexFosterFamilies, err)
		return []transport.SuggestionResponse{}, nil
	}

	out := make([]transport.SuggestionResponse, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ID())
		if err != nil {
			continue
		}
		out = append(out, transport.SuggestionResponse{
			ID:          id,
			Value:       hit.Field("displayName"),
			Highlighted: hit.HighlightedField("displayName"),
		})
	}
	return out, nil
}

// fromRequest validates the enums and normalizes the text fields. The phone
// is stored in E.164 when it parses as a French number.
func fromRequest(req transport.CreateFosterFamilyRequest) (repository.FosterFamily, error) {
	availability, ok := domain.ParseAvailability(req.Availability)
	if !ok {
		return repository.FosterFamily{}, apperr.Validation("unknown availability")
	}

	species := make([]string, 0, len(req.SpeciesToHost))
	for _, raw := range req.SpeciesToHost {
		sp, ok := animaldomain.ParseSpecies(raw)
		if !ok {
			return repository.FosterFamily{}, apperr.Validation("unknown species to host")
		}
		species = append(species, string(sp))
	}

	return repository.FosterFamily{
		DisplayName:   sanitize.Text(req.DisplayName),
		Email:         sanitize.Text(req.Email),
		Phone:         phone.NormalizeE164(req.Phone),
		Address:       sanitize.Text(req.Address),
		ZipCode:       sanitize.Text(req.ZipCode),
		City:          sanitize.Text(req.City),
		SpeciesToHost: species,
		Availability:  availability,
		Comments:      sanitize.Text(req.Comments),
	}, nil
}
