package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/field/model"
)

// The container leaves storage nil when minio is unreachable at boot;
// an upload in that mode must fail cleanly, not dereference nil.
func TestFieldService_UploadImageWithoutStorage(t *testing.T) {
	svc := NewFieldService(nil, nil, nil, nil, time.Minute)

	url, err := svc.UploadImage(context.Background(), 3, []byte("not even reached"))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorageUnavailable)
	assert.Empty(t, url)

	var fieldErr *model.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, model.ErrCodeStorageUnavailable, fieldErr.Code)
}
