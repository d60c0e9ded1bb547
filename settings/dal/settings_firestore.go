package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/settings/domain"
)

const (
	appCollection      = "app"
	adminSettingsDocID = "store"
	fieldRefundEnabled = "refundEnabled"
)

// AdminSettingsFirestore is used to interact with the store settings
// singleton stored on Firestore.
type AdminSettingsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewAdminSettingsFirestore returns a new AdminSettingsFirestore instance with given project id.
func NewAdminSettingsFirestore(ctx context.Context, projectID string) (*AdminSettingsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewAdminSettingsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewAdminSettingsFirestoreWithClient returns a new AdminSettingsFirestore using given client.
func NewAdminSettingsFirestoreWithClient(fun connection.FirestoreFromContextFun) *AdminSettingsFirestore {
	return &AdminSettingsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *AdminSettingsFirestore) settingsDocRef(ctx context.Context) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(appCollection).Doc(adminSettingsDocID)
}

// Get returns the settings singleton. A missing document yields the zero
// settings rather than an error.
func (d *AdminSettingsFirestore) Get(ctx context.Context) (*domain.AdminSettings, error) {
	docSnap, err := d.settingsDocRef(ctx).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.AdminSettings{}, nil
		}

		return nil, err
	}

	var settings domain.AdminSettings

	if err := docSnap.DataTo(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SetRefundEnabled upserts the refund toggle and returns the stored settings.
func (d *AdminSettingsFirestore) SetRefundEnabled(ctx context.Context, enabled bool) (*domain.AdminSettings, error) {
	if _, err := d.settingsDocRef(ctx).Set(ctx, map[string]interface{}{
		fieldRefundEnabled: enabled,
	}, firestore.MergeAll); err != nil {
		return nil, err
	}

	return d.Get(ctx)
}
