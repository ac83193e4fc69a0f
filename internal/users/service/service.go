package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/auth/password"
	"refuge_backend/internal/search"
	"refuge_backend/internal/users/repository"
	"refuge_backend/internal/users/transport"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/logger"
)

// indexUsers is the fuzzy index holding member documents.
const indexUsers = "users"

type Service struct {
	repo     *repository.Repository
	fuzzy    search.Fuzzy
	recorder audit.Recorder
	log      *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger) *Service {
	return &Service{repo: repo, fuzzy: fuzzy, recorder: recorder, log: log}
}

func (s *Service) Create(ctx context.Context, actor uuid.UUID, req transport.CreateUserRequest) (repository.User, error) {
	for _, g := range req.Groups {
		if !auth.ValidGroup(g) {
			return repository.User{}, apperr.Validation("unknown group: " + g)
		}
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return repository.User{}, err
	}

	user, err := s.repo.Create(ctx, req.Email, hash, req.FirstName, req.LastName, req.Groups)
	if errors.Is(err, repository.ErrEmailTaken) {
		return repository.User{}, apperr.Conflict("email already in use")
	}
	if err != nil {
		return repository.User{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionCreate,
		ResourceType: audit.ResourceUser,
		ResourceID:   user.ID,
		After:        user,
	})
	return user, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return user, err
}

func (s *Service) Update(ctx context.Context, actor, id uuid.UUID, req transport.UpdateUserRequest) (repository.User, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.User{}, err
	}

	user, err := s.repo.Update(ctx, id, req.Email, req.FirstName, req.LastName)
	if errors.Is(err, repository.ErrEmailTaken) {
		return repository.User{}, apperr.Conflict("email already in use")
	}
	if err != nil {
		return repository.User{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceUser,
		ResourceID:   user.ID,
		Before:       before,
		After:        user,
	})
	return user, nil
}

func (s *Service) SetGroups(ctx context.Context, actor, id uuid.UUID, groups []string) (repository.User, error) {
	for _, g := range groups {
		if !auth.ValidGroup(g) {
			return repository.User{}, apperr.Validation("unknown group: " + g)
		}
	}
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.User{}, err
	}

	user, err := s.repo.SetGroups(ctx, id, groups)
	if err != nil {
		return repository.User{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceUser,
		ResourceID:   user.ID,
		Before:       before,
		After:        user,
	})
	return user, nil
}

// SetArchived disables or re-enables an account. Archived members keep their
// history but cannot sign in.
func (s *Service) SetArchived(ctx context.Context, actor, id uuid.UUID, archived bool) (repository.User, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return repository.User{}, err
	}

	user, err := s.repo.SetArchived(ctx, id, archived)
	if err != nil {
		return repository.User{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceUser,
		ResourceID:   user.ID,
		Before:       before,
		After:        user,
	})
	return user, nil
}

// Search lists members. A text query is resolved by the fuzzy index first;
// index failure degrades to an empty result, it never fails the request.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.User], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexUsers, params.Text, "", search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexUsers, err)
			return search.EmptyResult[repository.User](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.User](), nil
		}
		rankedIDs = ids
	}
	return s.repo.Search(ctx, params, rankedIDs, page)
}

// Suggest powers the manager autocomplete input.
func (s *Service) Suggest(ctx context.Context, text string) ([]transport.SuggestionResponse, error) {
	hits, err := s.fuzzy.Suggest(ctx, indexUsers, text, "archived = false", search.MaxSuggestions, []string{"displayName"})
	if err != nil {
		s.log.SearchIndexDegraded(indexUsers, err)
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
