package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-catalog/internal/dto"
	pkgErrors "data-catalog/pkg/errors"
)

func seedTags(t *testing.T, f *fixture) {
	t.Helper()
	_, err := f.tags.CreateTagType(&dto.CreateTagTypeRequest{Code: "DATA_DOMAIN", DisplayName: "Data Domain", OrderNumber: 1}, testUser)
	require.NoError(t, err)
	_, err = f.tags.CreateTag(&dto.CreateTagRequest{
		TagKey:      dto.TagKey{TagTypeCode: "DATA_DOMAIN", TagCode: "FINANCE"},
		DisplayName: "Finance",
	}, testUser)
	require.NoError(t, err)
}

func TestGetTag(t *testing.T) {
	f := newFixture(t)
	seedTags(t, f)

	tag, err := f.tags.GetTag(dto.TagKey{TagTypeCode: "data_domain", TagCode: "finance"})
	require.NoError(t, err)
	assert.Equal(t, "FINANCE", tag.TagCode)
	assert.Equal(t, "Finance", tag.DisplayName)
	assert.Equal(t, testUser, tag.CreatedBy)

	_, err = f.tags.GetTag(dto.TagKey{TagTypeCode: "DATA_DOMAIN", TagCode: "MARKETING"})
	requireCode(t, err, pkgErrors.CodeNotFound)
	assert.Contains(t, err.Error(), `Tag with code "MARKETING" doesn't exist for tag type "DATA_DOMAIN".`)
}

func TestAssertDisplayNameDoesNotExistForTag(t *testing.T) {
	f := newFixture(t)
	seedTags(t, f)

	require.NoError(t, f.tags.AssertDisplayNameDoesNotExistForTag("DATA_DOMAIN", "Marketing"))

	err := f.tags.AssertDisplayNameDoesNotExistForTag("data_domain", "FINANCE")
	requireCode(t, err, pkgErrors.CodeConflict)
	assert.Contains(t, err.Error(), `Display name "FINANCE" already exists for a tag with tag type "DATA_DOMAIN" and tag code "FINANCE".`)
}

func TestCreateTagConflicts(t *testing.T) {
	f := newFixture(t)
	seedTags(t, f)

	_, err := f.tags.CreateTag(&dto.CreateTagRequest{
		TagKey:      dto.TagKey{TagTypeCode: "DATA_DOMAIN", TagCode: "finance"},
		DisplayName: "Another",
	}, testUser)
	requireCode(t, err, pkgErrors.CodeConflict)

	_, err = f.tags.CreateTag(&dto.CreateTagRequest{
		TagKey:      dto.TagKey{TagTypeCode: "DATA_DOMAIN", TagCode: "ACCOUNTING"},
		DisplayName: "finance",
	}, testUser)
	requireCode(t, err, pkgErrors.CodeConflict)

	_, err = f.tags.CreateTag(&dto.CreateTagRequest{
		TagKey:      dto.TagKey{TagTypeCode: "UNKNOWN", TagCode: "X"},
		DisplayName: "X",
	}, testUser)
	requireCode(t, err, pkgErrors.CodeNotFound)

	tags, err := f.tags.ListTags("DATA_DOMAIN")
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestStoragePolicyRuleType(t *testing.T) {
	f := newFixture(t)

	_, err := f.ruleTypes.Create(&dto.CreateStoragePolicyRuleTypeRequest{Code: "DAYS_SINCE_BDATA_REGISTERED"}, testUser)
	require.NoError(t, err)

	ruleType, err := f.ruleTypes.Get("days_since_bdata_registered")
	require.NoError(t, err)
	assert.Equal(t, "DAYS_SINCE_BDATA_REGISTERED", ruleType.Code)

	_, err = f.ruleTypes.Create(&dto.CreateStoragePolicyRuleTypeRequest{Code: "Days_Since_BData_Registered"}, testUser)
	requireCode(t, err, pkgErrors.CodeConflict)

	_, err = f.ruleTypes.Get("NOPE")
	requireCode(t, err, pkgErrors.CodeNotFound)
}
