package email

import (
	"context"

	"refuge_backend/platform/logger"
)

// LogSender stands in for the SMTP sender when delivery is disabled. It logs
// what would have been sent, for local development.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendApplicationValidatedEmail(_ context.Context, toEmail, _, structureName, _ string) error {
	s.log.Info("email skipped (delivery disabled)", "kind", "application_validated", "to", toEmail, "structure", structureName)
	return nil
}

func (s *LogSender) SendApplicationRefusedEmail(_ context.Context, toEmail, _, structureName, _ string) error {
	s.log.Info("email skipped (delivery disabled)", "kind", "application_refused", "to", toEmail, "structure", structureName)
	return nil
}

func (s *LogSender) SendAnimalAssignedEmail(_ context.Context, toEmail, _, animalName, _ string) error {
	s.log.Info("email skipped (delivery disabled)", "kind", "animal_assigned", "to", toEmail, "animal", animalName)
	return nil
}

var _ Sender = (*LogSender)(nil)
