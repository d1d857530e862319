package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/nguyentranbao-ct/lighting-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/lighting-api/pkg/logctx"
	"go.uber.org/zap"
)

type ContactUsecase interface {
	SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactReceipt, error)
}

type contactUsecase struct {
	contactRepo mongodb.ContactRepository
	log         *zap.SugaredLogger
	now         func() time.Time
}

func NewContactUsecase(contactRepo mongodb.ContactRepository, log *zap.SugaredLogger) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		log:         log.Named("contact"),
		now:         time.Now,
	}
}

// SubmitContact stores an already validated contact message.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactReceipt, error) {
	msg := models.NewContactMessage(req, uc.now())
	if err := uc.contactRepo.Create(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to submit contact: %w", err)
	}

	logctx.From(ctx, uc.log).Infow("contact message stored", "id", msg.ID.String())
	return &models.ContactReceipt{
		Status: "ok",
		ID:     msg.ID.String(),
	}, nil
}
