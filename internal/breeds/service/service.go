package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/breeds/repository"
	"refuge_backend/internal/breeds/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/sanitize"
)

// indexBreeds is the fuzzy index holding breed documents.
const indexBreeds = "breeds"

type Service struct {
	repo     *repository.Repository
	fuzzy    search.Fuzzy
	recorder audit.Recorder
	log      *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger) *Service {
	return &Service{repo: repo, fuzzy: fuzzy, recorder: recorder, log: log}
}

func (s *Service) Create(ctx context.Context, actor uuid.UUID, req transport.CreateBreedRequest) (repository.Breed, error) {
	species, ok := domain.ParseSpecies(req.Species)
	if !ok {
		return repository.Breed{}, apperr.Validation("unknown species")
	}

	breed, err := s.repo.Create(ctx, sanitize.Text(req.Name), species)
	if err != nil {
		return repository.Breed{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourceBreed,
		ResourceID:   breed.ID,
		After:        breed,
	})
	return breed, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Breed, error) {
	breed, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Breed{}, apperr.NotFound("breed not found")
	}
	return breed, err
}

func (s *Service) Update(ctx context.Context, actor, id uuid.UUID, req transport.UpdateBreedRequest) (repository.Breed, error) {
	species, ok := domain.ParseSpecies(req.Species)
	if !ok {
		return repository.Breed{}, apperr.Validation("unknown species")
	}
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.Breed{}, err
	}

	breed, err := s.repo.Update(ctx, id, sanitize.Text(req.Name), species)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Breed{}, apperr.NotFound("breed not found")
	}
	if err != nil {
		return repository.Breed{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceBreed,
		ResourceID:   breed.ID,
		Before:       before,
		After:        breed,
	})
	return breed, nil
}

// Delete removes a breed unless animals still reference it.
func (s *Service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrReferenced):
		return apperr.Conflict("breed is referenced by animals and cannot be deleted")
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("breed not found")
	case err != nil:
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionDelete,
		ResourceType: audit.ResourceBreed,
		ResourceID:   id,
		Before:       before,
	})
	return nil
}

// Search lists breeds; a text query is resolved by the fuzzy index scoped by
// the species hint.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.Breed], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexBreeds, params.Text, speciesFilter(params.Species), search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexBreeds, err)
			return search.EmptyResult[repository.Breed](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.Breed](), nil
		}
		rankedIDs = ids
	}
	return s.repo.Search(ctx, params, rankedIDs, page)
}

// Suggest powers the breed autocomplete, scoped by an optional species hint.
func (s *Service) Suggest(ctx context.Context, text string, species search.EnumSet[domain.Species]) ([]transport.SuggestionResponse, error) {
	hits, err := s.fuzzy.Suggest(ctx, indexBreeds, text, speciesFilter(species), search.MaxSuggestions, []string{"name"})
	if err != nil {
		s.log.SearchIndexDegraded(indexBreeds, err)
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
			Value:       hit.Field("name"),
			Highlighted: hit.HighlightedField("name"),
		})
	}
	return out, nil
}

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
