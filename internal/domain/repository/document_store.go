// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// Errors every document store backend translates its failures into.
var (
	// ErrDocumentNotFound is returned when the addressed document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrPermissionDenied is returned when the backend rejects the caller.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("document store unavailable")
	// ErrSubscriptionClosed is returned by Err after Unsubscribe.
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// SnapshotHandler receives the full current result set of a query subscription.
type SnapshotHandler func(docs []*entity.Document)

// DocumentHandler receives the current state of a single document, nil when absent.
type DocumentHandler func(doc *entity.Document)

// Subscription is a live listener registered on the document store.
// Handlers of one subscription are called sequentially from a single goroutine.
type Subscription interface {
	// Unsubscribe stops delivery and waits for the listener to exit. Safe to call more than once.
	Unsubscribe()

	// Done is closed once the listener has exited, either after Unsubscribe or on a backend failure.
	Done() <-chan struct{}

	// Err returns the failure that ended the subscription, or ErrSubscriptionClosed after Unsubscribe.
	Err() error
}

// DocumentStore is the generic gateway to the hosted document database.
// Payloads are loosely typed and never schema-validated.
type DocumentStore interface {
	// Create stores data under a generated id, stamping createdAt and updatedAt.
	Create(ctx context.Context, collection string, data map[string]any) (*entity.Document, error)

	// Set overwrites the document at id, stamping createdAt and updatedAt.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Read returns the document at id or ErrDocumentNotFound.
	Read(ctx context.Context, collection, id string) (*entity.Document, error)

	// ReadAll returns every document of the collection.
	ReadAll(ctx context.Context, collection string) ([]*entity.Document, error)

	// Update merges partial into the existing document and stamps updatedAt.
	// Returns ErrDocumentNotFound when the document does not exist.
	Update(ctx context.Context, collection, id string, partial map[string]any) error

	// Delete removes the document at id. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Query returns the documents matching q.
	Query(ctx context.Context, collection string, q entity.Query) ([]*entity.Document, error)

	// Subscribe delivers the result set of q now and after every change to it.
	Subscribe(ctx context.Context, collection string, q entity.Query, handler SnapshotHandler) (Subscription, error)

	// SubscribeDocument delivers the document at id now and after every change to it.
	SubscribeDocument(ctx context.Context, collection, id string, handler DocumentHandler) (Subscription, error)
}
