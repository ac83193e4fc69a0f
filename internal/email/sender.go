// Package email renders and delivers the association's transactional mail.
package email

import "context"

// Sender delivers the applicant-facing notifications.
type Sender interface {
	SendApplicationValidatedEmail(ctx context.Context, toEmail, contactName, structureName, portalURL string) error
	SendApplicationRefusedEmail(ctx context.Context, toEmail, contactName, structureName, refusalMessage string) error
	SendAnimalAssignedEmail(ctx context.Context, toEmail, managerName, animalName, animalURL string) error
}
