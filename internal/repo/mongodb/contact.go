package mongodb

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/lighting-api/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type contactRepo struct {
	baseRepo[models.ContactMessage]
}

func NewContactRepository(db *DB) ContactRepository {
	return &contactRepo{
		baseRepo: newBaseRepo[models.ContactMessage](db),
	}
}

func (r *contactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	id, err := r.Insert(ctx, *msg)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	msg.ID = models.ObjectID(id)
	return nil
}
