package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/service"
	"renova/mocks"
)

func TestContactService_Submit_Success(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	svc := service.NewContactService(sender, config.ContactConfig{ToAddress: "contact@renova.example"})

	sender.On("Send", mock.Anything, "contact@renova.example", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := svc.Submit(context.Background(), domain.ContactMessage{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Message: "Devis pour une rénovation de cuisine",
	})

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestContactService_Submit_DeliveryFailure(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	svc := service.NewContactService(sender, config.ContactConfig{ToAddress: "contact@renova.example"})

	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := svc.Submit(context.Background(), domain.ContactMessage{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Message: "Bonjour",
	})

	assert.ErrorIs(t, err, domain.ErrContactNotDelivered)
}
