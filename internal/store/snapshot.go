package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

// snapshotStore reads and writes the per-user remote document that mirrors
// the syncable snapshot.
type snapshotStore struct {
	client *firestore.Client
}

func NewSnapshotStore(client *firestore.Client) *snapshotStore {
	return &snapshotStore{client: client}
}

func (s *snapshotStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid)
}

// Fetch returns the user's document, or exists=false for a first-time user.
func (s *snapshotStore) Fetch(ctx context.Context, uid string) (*models.UserDocument, bool, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, classify("load", err)
	}
	var doc models.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, false, classify("load", err)
	}
	return &doc, true, nil
}

// Save writes the snapshot with merge semantics: top-level fields not in the
// document are preserved server-side. MergeAll requires map data, so the
// document goes over as a map keyed like its firestore tags.
func (s *snapshotStore) Save(ctx context.Context, uid string, snap models.Snapshot) error {
	doc := models.NewUserDocument(snap, time.Now())
	data := map[string]interface{}{
		"transactions":  doc.Transactions,
		"assets":        doc.Assets,
		"goals":         doc.Goals,
		"subscriptions": doc.Subscriptions,
		"currency":      doc.Currency,
		"lastUpdated":   doc.LastUpdated,
	}
	if _, err := s.doc(uid).Set(ctx, data, firestore.MergeAll); err != nil {
		return classify("save", err)
	}
	return nil
}

func classify(operation string, err error) error {
	if status.Code(err) == codes.PermissionDenied {
		return errs.NewSyncPermissionError(operation, err)
	}
	return errs.NewSyncTransientError(operation, err)
}
