package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore connects the client that backs the remote snapshot store.
// Credentials come from the ambient environment; FIRESTORE_EMULATOR_HOST is
// honored automatically, which is how the store tests run.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}
