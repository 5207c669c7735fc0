package service

import (
	"context"
	"fmt"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/port"
)

// ContactService relays visitor enquiries to the business inbox.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

type contactService struct {
	sender port.EmailSender
	cfg    config.ContactConfig
}

// NewContactService creates a new ContactService implementation.
func NewContactService(sender port.EmailSender, cfg config.ContactConfig) ContactService {
	return &contactService{sender: sender, cfg: cfg}
}

func (s *contactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	subject := fmt.Sprintf("Nouvelle demande de contact — %s", msg.Name)
	body := fmt.Sprintf("Nom: %s\nEmail: %s\nTéléphone: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Message)

	if err := s.sender.Send(ctx, s.cfg.ToAddress, subject, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrContactNotDelivered, err)
	}
	return nil
}
