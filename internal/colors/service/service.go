package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/colors/repository"
	"refuge_backend/internal/colors/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/sanitize"
)

// indexColors is the fuzzy index holding color documents.
const indexColors = "colors"

type Service struct {
	repo     *repository.Repository
	fuzzy    search.Fuzzy
	recorder audit.Recorder
	log      *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger) *Service {
	return &Service{repo: repo, fuzzy: fuzzy, recorder: recorder, log: log}
}

func (s *Service) Create(ctx context.Context, actor uuid.UUID, req transport.CreateColorRequest) (repository.Color, error) {
	color, err := s.repo.Create(ctx, sanitize.Text(req.Name))
	if err != nil {
		return repository.Color{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourceColor,
		ResourceID:   color.ID,
		After:        color,
	})
	return color, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Color, error) {
	color, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Color{}, apperr.NotFound("color not found")
	}
	return color, err
}

func (s *Service) Update(ctx context.Context, actor, id uuid.UUID, req transport.UpdateColorRequest) (repository.Color, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.Color{}, err
	}

	color, err := s.repo.Update(ctx, id, sanitize.Text(req.Name))
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Color{}, apperr.NotFound("color not found")
	}
	if err != nil {
		return repository.Color{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceColor,
		ResourceID:   color.ID,
		Before:       before,
		After:        color,
	})
	return color, nil
}

// Delete removes a color unless animals still reference it.
func (s *Service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrReferenced):
		return apperr.Conflict("color is referenced by animals and cannot be deleted")
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("color not found")
	case err != nil:
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionDelete,
		ResourceType: audit.ResourceColor,
		ResourceID:   id,
		Before:       before,
	})
	return nil
}

// Search lists colors; a text query is resolved by the fuzzy index.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.Color], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexColors, params.Text, "", search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexColors, err)
			return search.EmptyResult[repository.Color](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.Color](), nil
		}
		rankedIDs = ids
	}
	return s.repo.Search(ctx, rankedIDs, page)
}

// Suggest powers the color autocomplete.
func (s *Service) Suggest(ctx context.Context, text string) ([]transport.SuggestionResponse, error) {
	hits, err := s.fuzzy.Suggest(ctx, indexColors, text, "", search.MaxSuggestions, []string{"name"})
	if err != nil {
		s.log.SearchIndexDegraded(indexColors, err)
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
