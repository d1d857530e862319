package models

import "time"

// ContactCollection receives contact form submissions. It is never read back.
const ContactCollection = "contactin"

// ContactRequest is the payload of the contact form.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}

type ContactMessage struct {
	ID        ObjectID  `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     *string   `bson:"phone"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (ContactMessage) CollectionName() string {
	return ContactCollection
}

func NewContactMessage(req ContactRequest, now time.Time) ContactMessage {
	return ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

type ContactReceipt struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
