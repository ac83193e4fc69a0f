package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show/domain"
	"refuge_backend/internal/show/repository"
	"refuge_backend/internal/show/transport"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/sanitize"
)

func (s *Service) CreatePartner(ctx context.Context, actor uuid.UUID, req transport.CreatePartnerRequest) (repository.Partner, error) {
	candidate, err := partnerFromRequest(req)
	if err != nil {
		return repository.Partner{}, err
	}

	partner, err := s.repo.CreatePartner(ctx, candidate)
	if err != nil {
		return repository.Partner{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourcePartner,
		ResourceID:   partner.ID,
		After:        partner,
	})
	return partner, nil
}

func (s *Service) GetPartner(ctx context.Context, id uuid.UUID) (repository.Partner, error) {
	partner, err := s.repo.GetPartner(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Partner{}, apperr.NotFound("partner not found")
	}
	return partner, err
}

func (s *Service) UpdatePartner(ctx context.Context, actor, id uuid.UUID, req transport.UpdatePartnerRequest) (repository.Partner, error) {
	candidate, err := partnerFromRequest(req)
	if err != nil {
		return repository.Partner{}, err
	}
	before, err := s.GetPartner(ctx, id)
	if err != nil {
		return repository.Partner{}, err
	}

	partner, err := s.repo.UpdatePartner(ctx, id, candidate)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Partner{}, apperr.NotFound("partner not found")
	}
	if err != nil {
		return repository.Partner{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourcePartner,
		ResourceID:   partner.ID,
		Before:       before,
		After:        partner,
	})
	return partner, nil
}

func (s *Service) DeletePartner(ctx context.Context, actor, id uuid.UUID) error {
	before, err := s.GetPartner(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeletePartner(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("partner not found")
	}
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionDelete,
		ResourceType: audit.ResourcePartner,
		ResourceID:   id,
		Before:       before,
	})
	return nil
}

// SearchPartners lists partners; a text query is resolved by the fuzzy index.
func (s *Service) SearchPartners(ctx context.Context, params transport.PartnerSearchParams, page search.Page) (search.Result[repository.Partner], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexPartners, params.Text, "", search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexPartners, err)
			return search.EmptyResult[repository.Partner](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.Partner](), nil
		}
		rankedIDs = ids
	}
	return s.repo.SearchPartners(ctx, params, rankedIDs, page)
}

// SuggestPartners powers the partner autocomplete.
func (s *Service) SuggestPartners(ctx context.Context, text string) ([]transport.SuggestionResponse, error) {
	hits, err := s.fuzzy.Suggest(ctx, indexPartners, text, "", search.MaxSuggestions, []string{"name"})
	if err != nil {
		s.log.SearchIndexDegraded(indexPartners, err)
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

func partnerFromRequest(req transport.CreatePartnerRequest) (repository.Partner, error) {
	category, ok := domain.ParsePartnerCategory(req.Category)
	if !ok {
		return repository.Partner{}, apperr.Validation("unknown partner category")
	}
	return repository.Partner{
		Name:       sanitize.Text(req.Name),
		Category:   category,
		WebsiteURL: sanitize.Text(req.WebsiteURL),
		LogoKey:    sanitize.Text(req.LogoKey),
		Visible:    req.Visible,
	}, nil
}
