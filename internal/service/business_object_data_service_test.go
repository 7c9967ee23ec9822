package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-catalog/internal/dto"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

var aprilDays = []string{"2014-04-01", "2014-04-02", "2014-04-03", "2014-04-04", "2014-04-05"}

// seedCatalog 04-03 之外的日期均登记为 VALID
func seedCatalog(t *testing.T, f *fixture) {
	t.Helper()

	_, err := f.storages.Create(&dto.CreateStorageRequest{Name: "S3_MANAGED", Type: "S3"}, testUser)
	require.NoError(t, err)
	_, err = f.storages.Create(&dto.CreateStorageRequest{Name: "GLACIER", Type: "GLACIER"}, testUser)
	require.NoError(t, err)
	_, err = f.groups.Create(&dto.CreatePartitionKeyGroupRequest{Name: "TRADE_DT"}, testUser)
	require.NoError(t, err)
	_, err = f.groups.AddExpectedValues(&dto.ExpectedPartitionValuesRequest{
		PartitionKeyGroup:       "TRADE_DT",
		ExpectedPartitionValues: append([]string{"2014-03-31"}, aprilDays...),
	}, testUser)
	require.NoError(t, err)

	_, err = f.formats.Create(&dto.CreateFormatRequest{
		FormatKey:         testFormatKey,
		PartitionKey:      "TRADE_DT",
		PartitionKeyGroup: strPtr("trade_dt"),
	}, testUser)
	require.NoError(t, err)

	for _, day := range aprilDays {
		if day == "2014-04-03" {
			continue
		}
		_, err := f.data.Register(&dto.RegisterDataRequest{
			FormatKey:      testFormatKey,
			PartitionKey:   "TRADE_DT",
			PartitionValue: day,
			StorageUnits:   []dto.StorageUnitRequest{{StorageName: "s3_managed"}},
		}, testUser)
		require.NoError(t, err)
	}
}

func TestRegisterVersionsAndOutbox(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	resp, err := f.data.Register(&dto.RegisterDataRequest{
		FormatKey:      testFormatKey,
		PartitionKey:   "trade_dt",
		PartitionValue: "2014-04-01",
		Status:         constants.DataStatusInvalid,
		StorageUnits:   []dto.StorageUnitRequest{{StorageName: "S3_MANAGED", Directory: strPtr("s3://bucket/2014-04-01")}},
	}, testUser)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Version)
	assert.True(t, resp.Latest)
	assert.Equal(t, "S3_MANAGED", resp.StorageUnits[0].StorageName)

	first := 0
	old, err := f.data.Get(&dto.DataKey{FormatKey: testFormatKey, PartitionValue: "2014-04-01", BusinessObjectDataVersion: &first})
	require.NoError(t, err)
	assert.False(t, old.Latest)

	latest, err := f.data.Get(&dto.DataKey{FormatKey: testFormatKey, PartitionValue: "2014-04-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version)
	assert.Equal(t, constants.DataStatusInvalid, latest.Status)

	pending, err := f.outbox.FindPending(100)
	require.NoError(t, err)
	require.Len(t, pending, 5)
	assert.Equal(t, "catalog-events", pending[4].Destination)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(pending[4].Text), &event))
	assert.Equal(t, constants.EventDataRegistered, event["event_type"])
	assert.Equal(t, testUser, event["user"])
}

func TestRegisterRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	_, err := f.data.Register(&dto.RegisterDataRequest{
		FormatKey: testFormatKey, PartitionKey: "OTHER", PartitionValue: "x",
		StorageUnits: []dto.StorageUnitRequest{{StorageName: "S3_MANAGED"}},
	}, testUser)
	requireCode(t, err, pkgErrors.CodeBadRequest)

	_, err = f.data.Register(&dto.RegisterDataRequest{
		FormatKey: testFormatKey, PartitionKey: "TRADE_DT", PartitionValue: "x",
		StorageUnits: []dto.StorageUnitRequest{{StorageName: "NOPE"}},
	}, testUser)
	requireCode(t, err, pkgErrors.CodeNotFound)

	_, err = f.data.Register(&dto.RegisterDataRequest{
		FormatKey: testFormatKey, PartitionKey: "TRADE_DT", PartitionValue: "x",
		StorageUnits: []dto.StorageUnitRequest{{StorageName: "S3_MANAGED"}, {StorageName: "s3_managed"}},
	}, testUser)
	requireCode(t, err, pkgErrors.CodeBadRequest)

	unknown := testFormatKey
	unknown.Namespace = "UNKNOWN"
	_, err = f.data.Register(&dto.RegisterDataRequest{
		FormatKey: unknown, PartitionKey: "TRADE_DT", PartitionValue: "x",
		StorageUnits: []dto.StorageUnitRequest{{StorageName: "S3_MANAGED"}},
	}, testUser)
	requireCode(t, err, pkgErrors.CodeNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	resp, err := f.data.UpdateStatus(&dto.UpdateDataStatusRequest{
		DataKey: dto.DataKey{FormatKey: testFormatKey, PartitionValue: "2014-04-02"},
		Status:  constants.DataStatusArchived,
	}, "bob")
	require.NoError(t, err)
	assert.Equal(t, constants.DataStatusArchived, resp.Status)

	result, err := f.data.CheckAvailability(context.Background(), &dto.AvailabilityRequest{
		FormatKey: testFormatKey,
		PartitionValueFilter: &dto.PartitionValueFilter{
			PartitionKey:    "TRADE_DT",
			PartitionValues: []string{"2014-04-02"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.NotAvailableStatuses, 1)
	assert.Equal(t, constants.DataStatusArchived, result.NotAvailableStatuses[0].Reason)

	_, err = f.data.UpdateStatus(&dto.UpdateDataStatusRequest{
		DataKey: dto.DataKey{FormatKey: testFormatKey, PartitionValue: "2014-04-03"},
		Status:  constants.DataStatusValid,
	}, "bob")
	requireCode(t, err, pkgErrors.CodeNotFound)
}

func TestCheckAvailabilityEndToEnd(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	result, err := f.data.CheckAvailability(context.Background(), &dto.AvailabilityRequest{
		FormatKey: testFormatKey,
		PartitionValueFilters: []dto.PartitionValueFilter{{
			PartitionKey: "TRADE_DT",
			PartitionValueRange: &dto.PartitionValueRange{
				StartPartitionValue: "2014-04-01",
				EndPartitionValue:   "2014-04-05",
			},
		}},
		StorageNames: []string{"s3_managed"},
	})
	require.NoError(t, err)

	available := make([]string, 0, len(result.AvailableStatuses))
	for _, s := range result.AvailableStatuses {
		available = append(available, s.PartitionValue)
	}
	assert.Equal(t, []string{"2014-04-01", "2014-04-02", "2014-04-04", "2014-04-05"}, available)
	require.Len(t, result.NotAvailableStatuses, 1)
	assert.Equal(t, "2014-04-03", result.NotAvailableStatuses[0].PartitionValue)
	assert.Equal(t, constants.ReasonNotRegistered, result.NotAvailableStatuses[0].Reason)
	assert.Equal(t, []string{"S3_MANAGED"}, result.StorageNames)

	result, err = f.data.CheckAvailability(context.Background(), &dto.AvailabilityRequest{
		FormatKey: testFormatKey,
		PartitionValueFilter: &dto.PartitionValueFilter{
			PartitionKey:    "TRADE_DT",
			PartitionValues: []string{"2014-04-01"},
		},
		StorageNames: []string{"GLACIER"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.AvailableStatuses)
	require.Len(t, result.NotAvailableStatuses, 1)
	assert.Equal(t, constants.ReasonNotRegistered, result.NotAvailableStatuses[0].Reason)
}

func TestCheckAvailabilityValidation(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	cases := map[string]struct {
		req  *dto.AvailabilityRequest
		code int
	}{
		"no filters": {
			req:  &dto.AvailabilityRequest{FormatKey: testFormatKey},
			code: pkgErrors.CodeBadRequest,
		},
		"list and range": {
			req: &dto.AvailabilityRequest{FormatKey: testFormatKey, PartitionValueFilter: &dto.PartitionValueFilter{
				PartitionKey:        "TRADE_DT",
				PartitionValues:     []string{"2014-04-01"},
				PartitionValueRange: &dto.PartitionValueRange{StartPartitionValue: "a", EndPartitionValue: "b"},
			}},
			code: pkgErrors.CodeBadRequest,
		},
		"neither list nor range": {
			req: &dto.AvailabilityRequest{FormatKey: testFormatKey, PartitionValueFilter: &dto.PartitionValueFilter{
				PartitionKey: "TRADE_DT",
			}},
			code: pkgErrors.CodeBadRequest,
		},
		"partition key mismatch": {
			req: &dto.AvailabilityRequest{FormatKey: testFormatKey, PartitionValueFilter: &dto.PartitionValueFilter{
				PartitionKey:    "OTHER_DT",
				PartitionValues: []string{"2014-04-01"},
			}},
			code: pkgErrors.CodeBadRequest,
		},
		"reversed range": {
			req: &dto.AvailabilityRequest{FormatKey: testFormatKey, PartitionValueFilter: &dto.PartitionValueFilter{
				PartitionKey:        "TRADE_DT",
				PartitionValueRange: &dto.PartitionValueRange{StartPartitionValue: "2014-04-05", EndPartitionValue: "2014-04-01"},
			}},
			code: pkgErrors.CodeBadRequest,
		},
		"unknown storage": {
			req: &dto.AvailabilityRequest{
				FormatKey: testFormatKey,
				PartitionValueFilter: &dto.PartitionValueFilter{
					PartitionKey:    "TRADE_DT",
					PartitionValues: []string{"2014-04-01"},
				},
				StorageNames: []string{"NOPE"},
			},
			code: pkgErrors.CodeNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.data.CheckAvailability(context.Background(), tc.req)
			requireCode(t, err, tc.code)
		})
	}
}

func TestCheckAvailabilityTooManyValues(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	values := make([]string, 101)
	for i := range values {
		values[i] = string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	_, err := f.data.CheckAvailability(context.Background(), &dto.AvailabilityRequest{
		FormatKey: testFormatKey,
		PartitionValueFilter: &dto.PartitionValueFilter{
			PartitionKey:    "TRADE_DT",
			PartitionValues: values,
		},
	})
	requireCode(t, err, pkgErrors.CodeBadRequest)
}
