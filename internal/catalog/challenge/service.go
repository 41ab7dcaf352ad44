// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package challenge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/captcha"
	"github.com/digital-mary/catalog/internal/platform/mailer"
	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/uuidv7"
)

// Service carries the inquiry workflow: captcha gate, validation, persist,
// then notification mail to the curation team.
type Service struct {
	repo       Repository
	verifier   captcha.Verifier
	mail       mailer.Sender
	recipients []string
	logger     *slog.Logger
}

func NewService(repo Repository, verifier captcha.Verifier, mail mailer.Sender, recipients []string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		verifier:   verifier,
		mail:       mail,
		recipients: recipients,
		logger:     logger,
	}
}

// SubmitInput is the public submission shape.
type SubmitInput struct {
	Fullname     string `json:"fullname"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captcha_token"`
}

// Submit runs the full workflow for a visitor inquiry. Only public items
// accept challenges; a private or unknown item reads as not found.
// Notification failures are logged and never surfaced: the inquiry is
// already persisted and curators will see it in their queue regardless.
func (service *Service) Submit(ctx context.Context, itemID string, input SubmitInput, remoteIP string) (*Challenge, error) {
	if err := service.verifier.Verify(ctx, input.CaptchaToken, remoteIP); err != nil {
		service.logger.InfoContext(ctx, "challenge_captcha_rejected",
			slog.String("item_id", itemID),
			slog.String("reason", err.Error()),
		)
		return nil, apperr.Forbidden("Captcha verification failed")
	}

	v := &validate.Validator{}
	v.Required("fullname", input.Fullname).MaxLen("fullname", input.Fullname, 255)
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("message", input.Message).MaxLen("message", input.Message, 10000)
	if err := v.Err(); err != nil {
		return nil, err
	}

	itemName, ok, err := service.repo.PublicItemName(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Item")
	}

	c := &Challenge{
		ID:       uuidv7.New(),
		ItemID:   itemID,
		Fullname: input.Fullname,
		Email:    input.Email,
		Message:  input.Message,
		Archive:  false,
	}
	if err := service.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	service.notify(ctx, c, itemName)
	return c, nil
}

// notify mails each configured recipient about the new inquiry.
func (service *Service) notify(ctx context.Context, c *Challenge, itemName string) {
	if len(service.recipients) == 0 {
		return
	}

	subject := fmt.Sprintf("New challenge for %q", itemName)
	body := fmt.Sprintf(
		"A visitor submitted a challenge.\r\n\r\nItem: %s\r\nFrom: %s <%s>\r\n\r\n%s\r\n",
		itemName, c.Fullname, c.Email, c.Message,
	)

	for _, recipient := range service.recipients {
		if err := service.mail.Send(ctx, recipient, subject, body); err != nil {
			service.logger.WarnContext(ctx, "challenge_notification_failed",
				slog.String("challenge_id", c.ID),
				slog.String("recipient", recipient),
				slog.String("error", err.Error()),
			)
		}
	}
}

// List returns inquiries for the curator queue.
func (service *Service) List(ctx context.Context, archived *bool) ([]*Challenge, error) {
	return service.repo.List(ctx, archived)
}

// Archive marks a batch of inquiries handled.
func (service *Service) Archive(ctx context.Context, ids []string) error {
	return service.repo.SetArchived(ctx, ids, true)
}

// Unarchive returns a batch of inquiries to the live queue.
func (service *Service) Unarchive(ctx context.Context, ids []string) error {
	return service.repo.SetArchived(ctx, ids, false)
}

// Delete removes one inquiry outright.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.Delete(ctx, id)
}
