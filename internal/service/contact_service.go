package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sivadev/folio/internal/api/rest"
	"github.com/sivadev/folio/internal/errs"
	"github.com/sivadev/folio/internal/models"
)

// ContactService exposes the contact endpoint
type ContactService struct {
	client *rest.Client
}

// NewContactService creates a new contact service
func NewContactService(client *rest.Client) *ContactService {
	return &ContactService{client: client}
}

// ContactInput is a contact form submission. CaptchaToken is optional at
// this level; the submission gate decides whether one is required.
type ContactInput struct {
	Name         string
	Email        string
	Message      string
	CaptchaToken string
}

// Send submits a contact message. Server rejections surface with a message
// extracted in order: structured server message, stringified error value,
// generic fallback.
func (s *ContactService) Send(ctx context.Context, input ContactInput) (*models.ContactReceipt, error) {
	payload := map[string]string{
		"name":    input.Name,
		"email":   input.Email,
		"message": input.Message,
	}
	if input.CaptchaToken != "" {
		payload["captcha_token"] = input.CaptchaToken
	}

	raw, err := s.client.Post(ctx, "/api/contact", payload)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Message == "" {
			e.Message = "Contact request failed"
		}
		return nil, err
	}

	// The receipt is informational; a success with an unexpected data shape
	// is still a success.
	var receipt models.ContactReceipt
	_ = json.Unmarshal(raw, &receipt)
	return &receipt, nil
}
