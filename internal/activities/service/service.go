package service

import (
	"context"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/activities/repository"
	"refuge_backend/internal/activities/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/logger"
)

type Service struct {
	repo *repository.Repository
	log  *logger.Logger
}

func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Record appends one audit entry. Snapshots are diffed at write time so the
// stored entry carries the changed top-level fields. Persistence failures are
// logged and swallowed; the audit trail never fails a mutation.
func (s *Service) Record(ctx context.Context, rec audit.Record) {
	before := audit.Snapshot(rec.Before)
	after := audit.Snapshot(rec.After)

	entry := repository.Entry{
		Actor:        rec.Actor,
		Action:       rec.Action,
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		ChangedKeys:  audit.ChangedKeys(before, after),
		Before:       before,
		After:        after,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.DatabaseError("activities.insert", err)
	}
}

// Search lists audit entries newest first.
func (s *Service) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[repository.Entry], error) {
	return s.repo.Search(ctx, params, page)
}

var _ audit.Recorder = (*Service)(nil)
