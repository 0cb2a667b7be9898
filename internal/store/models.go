package store

import (
	"strings"
	"time"
)

// Category classifies a gallery document.
type Category string

const (
	CategoryDiploma     Category = "Diploma"
	CategoryCertificate Category = "Certificate"
	// CategorySertifikat is how older site versions stored certificates.
	// Migrated records keep it and it stays assignable.
	CategorySertifikat Category = "Sertifikat"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDiploma, CategoryCertificate, CategorySertifikat:
		return true
	}
	return false
}

// Status is the visibility lifecycle of a gallery document.
// visible and hidden toggle freely; deleted is a soft delete that keeps the
// record enumerable until it is purged.
type Status string

const (
	StatusVisible Status = "visible"
	StatusHidden  Status = "hidden"
	StatusDeleted Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusVisible, StatusHidden, StatusDeleted:
		return true
	}
	return false
}

// MessageStatus tracks whether the admin has read a contact message.
type MessageStatus string

const (
	MessageUnread MessageStatus = "unread"
	MessageRead   MessageStatus = "read"
)

func (s MessageStatus) Valid() bool {
	return s == MessageUnread || s == MessageRead
}

// Document is one diploma or certificate in the gallery.
// CreatedAt is Unix milliseconds, the layout legacy data was written in.
type Document struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	CreatedAt   int64    `json:"createdAt"`
}

// Created returns CreatedAt as a time.
func (d Document) Created() time.Time { return time.UnixMilli(d.CreatedAt) }

// NewDocument is the caller-supplied part of a document.
type NewDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Category    Category `json:"category"`
}

// Validate enforces the only required fields: title and image URL.
func (n NewDocument) Validate() error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.ImageURL) == "" {
		return ErrInvalidDocument
	}
	return nil
}

// DocumentPatch holds the fields to merge into a document; nil fields are left alone.
// Identity, creation time and status are not patchable.
type DocumentPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

func (p DocumentPatch) fields() []field {
	var fs []field
	if p.Title != nil {
		fs = append(fs, field{"title", *p.Title})
	}
	if p.Description != nil {
		fs = append(fs, field{"description", *p.Description})
	}
	if p.ImageURL != nil {
		fs = append(fs, field{"imageUrl", *p.ImageURL})
	}
	if p.Category != nil {
		fs = append(fs, field{"category", *p.Category})
	}
	return fs
}

// Service is one offered service on the marketing page.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	CreatedAt   int64    `json:"createdAt"`
}

type NewService struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type ServicePatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Highlights  *[]string `json:"highlights,omitempty"`
}

func (p ServicePatch) fields() []field {
	var fs []field
	if p.Title != nil {
		fs = append(fs, field{"title", *p.Title})
	}
	if p.Description != nil {
		fs = append(fs, field{"description", *p.Description})
	}
	if p.Highlights != nil {
		fs = append(fs, field{"highlights", *p.Highlights})
	}
	return fs
}

// Message is an inbound contact-form submission.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Body      string        `json:"body"`
	Status    MessageStatus `json:"status"`
	CreatedAt int64         `json:"createdAt"`
}

type NewMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// Credentials is the single admin login pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
