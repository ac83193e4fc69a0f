package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show/domain"
	"refuge_backend/internal/show/repository"
	"refuge_backend/internal/show/transport"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/events"
	"refuge_backend/platform/phone"
	"refuge_backend/platform/sanitize"
)

// Submit records a new application from the exhibitor portal.
func (s *Service) Submit(ctx context.Context, req transport.SubmitApplicationRequest) (repository.Application, error) {
	standSizeID, err := uuid.Parse(req.StandSizeID)
	if err != nil {
		return repository.Application{}, apperr.Validation("invalid stand size id")
	}
	if _, err := s.repo.GetStandSize(ctx, standSizeID); errors.Is(err, repository.ErrNotFound) {
		return repository.Application{}, apperr.Validation("unknown stand size")
	} else if err != nil {
		return repository.Application{}, err
	}

	targets, err := parseTargets(req.Targets)
	if err != nil {
		return repository.Application{}, err
	}
	fields, err := parseFields(req.Fields)
	if err != nil {
		return repository.Application{}, err
	}

	return s.repo.CreateApplication(ctx, repository.Application{
		StructureName: sanitize.Text(req.StructureName),
		ContactName:   sanitize.Text(req.ContactName),
		Email:         sanitize.Text(req.Email),
		Phone:         phone.NormalizeE164(req.Phone),
		WebsiteURL:    sanitize.Text(req.WebsiteURL),
		Description:   sanitize.Text(req.Description),
		StandSizeID:   standSizeID,
		Targets:       targets,
		Fields:        fields,
	})
}

func (s *Service) GetApplication(ctx context.Context, id uuid.UUID) (repository.Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Application{}, apperr.NotFound("application not found")
	}
	return app, err
}

// UpdateStatus moves an application through its lifecycle. The transition
// decision is pure; this method executes its commands: exhibitor creation
// atomically with the status write, folder creation best effort, and the
// applicant notification only after the commit.
func (s *Service) UpdateStatus(ctx context.Context, actor, id uuid.UUID, req transport.UpdateApplicationStatusRequest) (repository.Application, error) {
	next, ok := domain.ParseStatus(req.Status)
	if !ok {
		return repository.Application{}, apperr.Validation("unknown status")
	}
	before, err := s.GetApplication(ctx, id)
	if err != nil {
		return repository.Application{}, err
	}

	message := sanitize.Text(req.RefusalMessage)
	commands, err := domain.Transition(before.Status, next, message)
	switch {
	case errors.Is(err, domain.ErrMissingRefusalMessage):
		return repository.Application{}, apperr.Validation("a refusal message is required")
	case errors.Is(err, domain.ErrInvalidTransition):
		return repository.Application{}, apperr.Conflict(fmt.Sprintf("cannot move a %s application to %s", before.Status, next))
	case err != nil:
		return repository.Application{}, err
	}

	var exhibitor repository.Exhibitor
	switch next {
	case domain.StatusValidated:
		exhibitor, err = s.repo.Validate(ctx, before, folderKey(before))
	case domain.StatusRefused:
		err = s.repo.Refuse(ctx, id, message)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Application{}, apperr.Conflict("application was settled concurrently")
	}
	if err != nil {
		return repository.Application{}, err
	}

	for _, command := range commands {
		s.execute(ctx, command, before, exhibitor, message)
	}

	after, err := s.GetApplication(ctx, id)
	if err != nil {
		return repository.Application{}, err
	}

	s.recorder.Record(ctx, audit.Record{
		Actor:        actor,
		Action:       audit.ActionUpdate,
		ResourceType: audit.ResourceApplication,
		ResourceID:   id,
		Before:       before,
		After:        after,
	})
	return after, nil
}

// execute runs one post-transaction command. None of them can fail the
// request: the state is already committed.
func (s *Service) execute(ctx context.Context, command domain.Command, app repository.Application, exhibitor repository.Exhibitor, message string) {
	switch command {
	case domain.CommandCreateExhibitor:
		// Performed inside the validating transaction.
	case domain.CommandCreateStorageFolder:
		if s.storage == nil {
			return
		}
		bucket := s.cfg.GetMinioBucketShowDocuments()
		if err := s.storage.EnsureFolder(ctx, bucket, exhibitor.FolderKey); err != nil {
			s.log.Warn("exhibitor folder creation failed", "exhibitor_id", exhibitor.ID, "error", err)
		}
	case domain.CommandNotify:
		s.publishOutcome(ctx, app, exhibitor, message)
	}
}

func (s *Service) publishOutcome(ctx context.Context, app repository.Application, exhibitor repository.Exhibitor, message string) {
	if exhibitor.ID != uuid.Nil {
		s.bus.Publish(ctx, domain.ApplicationValidated{
			BaseEvent:     events.NewBaseEvent(),
			ApplicationID: app.ID.String(),
			ExhibitorID:   exhibitor.ID.String(),
			Email:         app.Email,
			ContactName:   app.ContactName,
			StructureName: app.StructureName,
		})
		return
	}
	s.bus.Publish(ctx, domain.ApplicationRefused{
		BaseEvent:      events.NewBaseEvent(),
		ApplicationID:  app.ID.String(),
		Email:          app.Email,
		ContactName:    app.ContactName,
		StructureName:  app.StructureName,
		RefusalMessage: message,
	})
}

// SearchApplications lists applications; a text query is resolved by the
// fuzzy index.
func (s *Service) SearchApplications(ctx context.Context, params transport.ApplicationSearchParams, page search.Page) (search.Result[repository.Application], error) {
	var rankedIDs []uuid.UUID
	if params.Text != "" {
		ids, err := s.fuzzy.SearchIDs(ctx, indexApplications, params.Text, "", search.CandidateLimit)
		if err != nil {
			s.log.SearchIndexDegraded(indexApplications, err)
			return search.EmptyResult[repository.Application](), nil
		}
		if len(ids) == 0 {
			return search.EmptyResult[repository.Application](), nil
		}
		rankedIDs = ids
	}
	return s.repo.SearchApplications(ctx, params, rankedIDs, page)
}

// ListStandSizes returns the stand catalog for the application form.
func (s *Service) ListStandSizes(ctx context.Context) ([]repository.StandSize, error) {
	return s.repo.ListStandSizes(ctx)
}

func folderKey(app repository.Application) string {
	return fmt.Sprintf("exhibitors/%s/", app.ID)
}

func parseTargets(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		target, ok := domain.ParseTarget(v)
		if !ok {
			return nil, apperr.Validation("unknown target")
		}
		out = append(out, string(target))
	}
	return out, nil
}

func parseFields(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		field, ok := domain.ParseActivityField(v)
		if !ok {
			return nil, apperr.Validation("unknown activity field")
		}
		out = append(out, string(field))
	}
	return out, nil
}
