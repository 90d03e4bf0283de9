// Package storage defines the persistence interface for documents.
package storage

import (
	"context"

	"github.com/hyperjump/shirushi/internal/models"
)

// Storage defines document persistence operations.
type Storage interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UpdateDocument(ctx context.Context, doc *models.Document) error
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, offset, limit int) ([]*models.Document, error)

	CountDocuments(ctx context.Context) (int64, error)

	Close() error
}
