package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techhaven/store-backend/common"
)

func TestNewAdminSettingsFirestoreDAL(t *testing.T) {
	ctx := context.Background()
	_, err := NewAdminSettingsFirestore(ctx, common.TestProjectID)
	assert.NoError(t, err)

	d := NewAdminSettingsFirestoreWithClient(nil)
	assert.NotNil(t, d)
}
