package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-catalog/internal/dto"
	pkgErrors "data-catalog/pkg/errors"
)

func TestStorageService(t *testing.T) {
	f := newFixture(t)

	created, err := f.storages.Create(&dto.CreateStorageRequest{Name: "S3_MANAGED", Type: "S3"}, testUser)
	require.NoError(t, err)
	assert.Equal(t, testUser, created.CreatedBy)

	_, err = f.storages.Create(&dto.CreateStorageRequest{Name: "s3_managed", Type: "S3"}, testUser)
	requireCode(t, err, pkgErrors.CodeConflict)
	assert.Contains(t, err.Error(), `Storage with name "s3_managed" already exists.`)

	got, err := f.storages.Get("s3_Managed")
	require.NoError(t, err)
	assert.Equal(t, "S3_MANAGED", got.Name)

	_, err = f.storages.Get("GLACIER")
	requireCode(t, err, pkgErrors.CodeNotFound)
	assert.Contains(t, err.Error(), `Storage with name "GLACIER" doesn't exist.`)

	list, err := f.storages.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
