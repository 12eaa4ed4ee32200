package usecase

import (
	"context"
	"time"

	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/apperror"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/logger"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/validation"
)

type contactUsecase struct {
	composer  domain.MailComposer
	transport domain.MailTransport
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(composer domain.MailComposer, transport domain.MailTransport) domain.ContactUsecase {
	return &contactUsecase{
		composer:  composer,
		transport: transport,
	}
}

// Submit runs the submission pipeline: validate, compose both messages,
// send the owner notification, then the auto-reply. The auto-reply is only
// attempted once the owner notification succeeded; if either send fails the
// whole submission fails.
func (uc *contactUsecase) Submit(ctx context.Context, form *domain.ContactForm) error {
	errs, sub := validation.ValidateContactForm(form)
	if len(errs) > 0 {
		return apperror.ValidationFailed(errs)
	}

	logger.Log.Info("processing contact form submission",
		"name", sub.FirstName+" "+sub.LastName,
		"email", sub.Email,
		"subject", sub.Subject,
	)

	now := time.Now()

	notification, err := uc.composer.OwnerNotification(sub, now)
	if err != nil {
		return apperror.Internal(err)
	}
	autoReply, err := uc.composer.AutoReply(sub)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := uc.transport.Send(ctx, notification); err != nil {
		return apperror.Delivery(err)
	}
	if err := uc.transport.Send(ctx, autoReply); err != nil {
		return apperror.Delivery(err)
	}

	logger.Log.Info("contact form processed successfully", "email", sub.Email)
	return nil
}
