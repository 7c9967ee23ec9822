package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-catalog/internal/dto"
	pkgErrors "data-catalog/pkg/errors"
)

func TestDeletePartitionKeyGroupInUse(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	err := f.groups.Delete("trade_dt")
	requireCode(t, err, pkgErrors.CodeConflict)
	assert.Contains(t, err.Error(), `Can not delete "TRADE_DT" partition key group since it is being used by a business object format.`)

	// 删除失败后范围检查仍按预期分区值展开
	resp, err := f.data.CheckAvailability(context.Background(), &dto.AvailabilityRequest{
		FormatKey: testFormatKey,
		PartitionValueFilter: &dto.PartitionValueFilter{
			PartitionKey:        "TRADE_DT",
			PartitionValueRange: &dto.PartitionValueRange{StartPartitionValue: "2014-04-01", EndPartitionValue: "2014-04-02"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.AvailableStatuses, 2)
	assert.Empty(t, resp.NotAvailableStatuses)
}

func TestDeletePartitionKeyGroup(t *testing.T) {
	f := newFixture(t)
	_, err := f.groups.Create(&dto.CreatePartitionKeyGroupRequest{Name: "UNUSED_DT"}, testUser)
	require.NoError(t, err)
	_, err = f.groups.AddExpectedValues(&dto.ExpectedPartitionValuesRequest{
		PartitionKeyGroup:       "UNUSED_DT",
		ExpectedPartitionValues: []string{"2014-04-01"},
	}, testUser)
	require.NoError(t, err)

	require.NoError(t, f.groups.Delete("unused_dt"))

	_, err = f.groups.Get("UNUSED_DT")
	requireCode(t, err, pkgErrors.CodeNotFound)

	err = f.groups.Delete("UNUSED_DT")
	requireCode(t, err, pkgErrors.CodeNotFound)
	assert.Contains(t, err.Error(), `Partition key group "UNUSED_DT" doesn't exist.`)
}

func TestListExpectedValuesWindow(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	resp, err := f.groups.ListExpectedValues("trade_dt", &dto.ListExpectedPartitionValuesRequest{Start: "2014-04-02", End: "2014-04-04"})
	require.NoError(t, err)
	assert.Equal(t, "TRADE_DT", resp.PartitionKeyGroup)
	assert.Equal(t, []string{"2014-04-02", "2014-04-03", "2014-04-04"}, resp.ExpectedPartitionValues)

	resp, err = f.groups.ListExpectedValues("TRADE_DT", &dto.ListExpectedPartitionValuesRequest{Start: "2014-04-04"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2014-04-04", "2014-04-05"}, resp.ExpectedPartitionValues)

	resp, err = f.groups.ListExpectedValues("TRADE_DT", &dto.ListExpectedPartitionValuesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.ExpectedPartitionValues, 6)

	_, err = f.groups.ListExpectedValues("TRADE_DT", &dto.ListExpectedPartitionValuesRequest{Start: "2014-04-05", End: "2014-04-01"})
	requireCode(t, err, pkgErrors.CodeBadRequest)

	_, err = f.groups.ListExpectedValues("NO_SUCH_GROUP", &dto.ListExpectedPartitionValuesRequest{})
	requireCode(t, err, pkgErrors.CodeNotFound)
}

func TestDeleteExpectedValues(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	// 任一值不存在时不删除任何值
	_, err := f.groups.DeleteExpectedValues(&dto.ExpectedPartitionValuesRequest{
		PartitionKeyGroup:       "TRADE_DT",
		ExpectedPartitionValues: []string{"2014-03-31", "2099-01-01"},
	})
	requireCode(t, err, pkgErrors.CodeNotFound)
	assert.Contains(t, err.Error(), `Expected partition value "2099-01-01" doesn't exist in "TRADE_DT" partition key group.`)

	all, err := f.groups.ListExpectedValues("TRADE_DT", &dto.ListExpectedPartitionValuesRequest{})
	require.NoError(t, err)
	assert.Contains(t, all.ExpectedPartitionValues, "2014-03-31")

	resp, err := f.groups.DeleteExpectedValues(&dto.ExpectedPartitionValuesRequest{
		PartitionKeyGroup:       "trade_dt",
		ExpectedPartitionValues: []string{"2014-03-31", "2014-03-31"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2014-03-31"}, resp.ExpectedPartitionValues)

	all, err = f.groups.ListExpectedValues("TRADE_DT", &dto.ListExpectedPartitionValuesRequest{})
	require.NoError(t, err)
	assert.Equal(t, aprilDays, all.ExpectedPartitionValues)
}
