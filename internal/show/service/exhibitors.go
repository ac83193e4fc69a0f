package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"refuge_backend/internal/show/repository"
	"refuge_backend/platform/apperr"
)

// badgeSizePx is the rendered edge of the badge QR code.
const badgeSizePx = 512

func (s *Service) GetExhibitor(ctx context.Context, id uuid.UUID) (repository.Exhibitor, error) {
	exhibitor, err := s.repo.GetExhibitor(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Exhibitor{}, apperr.NotFound("exhibitor not found")
	}
	return exhibitor, err
}

func (s *Service) ListExhibitors(ctx context.Context) ([]repository.Exhibitor, error) {
	return s.repo.ListExhibitors(ctx)
}

func (s *Service) AssignStand(ctx context.Context, id uuid.UUID, standNumber int) (repository.Exhibitor, error) {
	exhibitor, err := s.repo.AssignStand(ctx, id, standNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Exhibitor{}, apperr.NotFound("exhibitor not found")
	}
	return exhibitor, err
}

// Badge renders the exhibitor's check-in badge as a QR code PNG pointing at
// their portal page.
func (s *Service) Badge(ctx context.Context, id uuid.UUID) ([]byte, error) {
	exhibitor, err := s.GetExhibitor(ctx, id)
	if err != nil {
		return nil, err
	}

	target := fmt.Sprintf("%s/exhibitors/%s", s.cfg.GetShowPortalURL(), exhibitor.ID)
	png, err := qrcode.Encode(target, qrcode.Medium, badgeSizePx)
	if err != nil {
		return nil, err
	}
	return png, nil
}
