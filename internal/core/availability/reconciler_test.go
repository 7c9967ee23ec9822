package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"data-catalog/pkg/constants"
)

const (
	testFormatID = 7
	testGroup    = "TRADE_DT"
	testStorage  = "S3_MANAGED"
)

// fakeCatalog 以分区值为键的内存目录
type fakeCatalog struct {
	expected      []string
	registrations map[string][]Registration
	queries       []RegistrationQuery
}

func (c *fakeCatalog) ExpectedPartitionValues(_ context.Context, group string) ([]string, error) {
	if group != testGroup {
		return nil, nil
	}
	return c.expected, nil
}

func (c *fakeCatalog) FindRegistrations(_ context.Context, q RegistrationQuery) ([]Registration, error) {
	c.queries = append(c.queries, q)
	return c.registrations[q.PartitionValue], nil
}

func (c *fakeCatalog) register(value, status string, version int, storages ...string) {
	if c.registrations == nil {
		c.registrations = map[string][]Registration{}
	}
	c.registrations[value] = append(c.registrations[value], Registration{
		PartitionValue: value,
		DataVersion:    version,
		Status:         status,
		Storages:       storages,
	})
}

// mockCatalog 用于注入读取失败
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ExpectedPartitionValues(ctx context.Context, group string) ([]string, error) {
	args := m.Called(ctx, group)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *mockCatalog) FindRegistrations(ctx context.Context, q RegistrationQuery) ([]Registration, error) {
	args := m.Called(ctx, q)
	regs, _ := args.Get(0).([]Registration)
	return regs, args.Error(1)
}

var aprilDays = []string{"2014-04-01", "2014-04-02", "2014-04-03", "2014-04-04", "2014-04-05"}

// newAprilCatalog 04-03 未登记, 其余均为 VALID 且位于指定存储
func newAprilCatalog() *fakeCatalog {
	c := &fakeCatalog{expected: append([]string{"2014-03-31"}, append(aprilDays, "2014-04-06")...)}
	for _, day := range aprilDays {
		if day != "2014-04-03" {
			c.register(day, constants.DataStatusValid, 0, testStorage)
		}
	}
	return c
}

func newRequest(filters ...PartitionValueFilter) *Request {
	return &Request{
		Format:       FormatRef{ID: testFormatID, PartitionKey: "TRADE_DT", PartitionKeyGroup: testGroup},
		Filters:      filters,
		StorageNames: []string{testStorage},
	}
}

func listFilter(values ...string) PartitionValueFilter {
	return PartitionValueFilter{PartitionKey: "TRADE_DT", PartitionValues: values}
}

func rangeFilter(start, end string) PartitionValueFilter {
	return PartitionValueFilter{PartitionKey: "TRADE_DT", Range: &PartitionValueRange{Start: start, End: end}}
}

func partitionValues(statuses []Status) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.PartitionValue)
	}
	return values
}

func TestCheckAprilScenario(t *testing.T) {
	for name, filter := range map[string]PartitionValueFilter{
		"list":  listFilter(aprilDays...),
		"range": rangeFilter("2014-04-01", "2014-04-05"),
	} {
		t.Run(name, func(t *testing.T) {
			r := NewReconciler(newAprilCatalog(), "", 0)

			result, err := r.Check(context.Background(), newRequest(filter))
			require.NoError(t, err)

			assert.Equal(t, []string{"2014-04-01", "2014-04-02", "2014-04-04", "2014-04-05"}, partitionValues(result.Available))
			require.Len(t, result.NotAvailable, 1)
			assert.Equal(t, "2014-04-03", result.NotAvailable[0].PartitionValue)
			assert.Equal(t, constants.ReasonNotRegistered, result.NotAvailable[0].Reason)
			assert.Nil(t, result.NotAvailable[0].SubPartitionValues)
			assert.Nil(t, result.NotAvailable[0].DataVersion)

			for _, s := range result.Available {
				assert.Equal(t, constants.DataStatusValid, s.Reason)
				require.NotNil(t, s.DataVersion)
			}
		})
	}
}

func TestCheckIsTotalPartition(t *testing.T) {
	catalog := newAprilCatalog()
	catalog.register("2014-04-02", constants.DataStatusInvalid, 1, testStorage)
	catalog.register("X", constants.DataStatusValid, 0, "OTHER")
	r := NewReconciler(catalog, "", 0)

	requested := []string{"X", "2014-04-02", "2014-04-03", "unknown", "2014-04-01"}
	result, err := r.Check(context.Background(), newRequest(listFilter(requested...)))
	require.NoError(t, err)

	available := partitionValues(result.Available)
	notAvailable := partitionValues(result.NotAvailable)
	assert.Len(t, append(available, notAvailable...), len(requested))
	assert.ElementsMatch(t, requested, append(available, notAvailable...))
	for _, v := range available {
		assert.NotContains(t, notAvailable, v)
	}
}

func TestCheckPreservesRequestOrder(t *testing.T) {
	r := NewReconciler(newAprilCatalog(), "", 0)

	result, err := r.Check(context.Background(), newRequest(listFilter("2014-04-05", "2014-04-03", "2014-04-01", "2014-04-05")))
	require.NoError(t, err)

	assert.Equal(t, []string{"2014-04-05", "2014-04-01"}, partitionValues(result.Available))
	assert.Equal(t, []string{"2014-04-03"}, partitionValues(result.NotAvailable))
}

func TestCheckListIsCaseSensitive(t *testing.T) {
	catalog := &fakeCatalog{}
	catalog.register("abc", constants.DataStatusValid, 0, testStorage)
	r := NewReconciler(catalog, "", 0)

	result, err := r.Check(context.Background(), newRequest(listFilter("ABC", "abc")))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, partitionValues(result.Available))
	assert.Equal(t, []string{"ABC"}, partitionValues(result.NotAvailable))
}

func TestCheckRangeResolution(t *testing.T) {
	r := NewReconciler(newAprilCatalog(), "", 0)

	t.Run("start equals end", func(t *testing.T) {
		result, err := r.Check(context.Background(), newRequest(rangeFilter("2014-04-02", "2014-04-02")))
		require.NoError(t, err)
		assert.Equal(t, []string{"2014-04-02"}, partitionValues(result.Available))
		assert.Empty(t, result.NotAvailable)
	})

	t.Run("outside expected values", func(t *testing.T) {
		result, err := r.Check(context.Background(), newRequest(rangeFilter("2015-01-01", "2015-12-31")))
		require.NoError(t, err)
		assert.Empty(t, result.Available)
		assert.Empty(t, result.NotAvailable)
	})

	t.Run("reversed", func(t *testing.T) {
		result, err := r.Check(context.Background(), newRequest(rangeFilter("2014-04-05", "2014-04-01")))
		require.NoError(t, err)
		assert.Empty(t, result.Available)
		assert.Empty(t, result.NotAvailable)
	})

	t.Run("no partition key group", func(t *testing.T) {
		req := newRequest(rangeFilter("2014-04-01", "2014-04-05"))
		req.Format.PartitionKeyGroup = ""
		_, err := r.Check(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoPartitionKeyGroup)
	})
}

func TestCheckStandaloneFilterEquivalence(t *testing.T) {
	r := NewReconciler(newAprilCatalog(), "", 0)
	filter := rangeFilter("2014-04-01", "2014-04-05")

	listResult, err := r.Check(context.Background(), newRequest(filter))
	require.NoError(t, err)

	standalone := newRequest()
	standalone.Filter = &filter
	standaloneResult, err := r.Check(context.Background(), standalone)
	require.NoError(t, err)

	assert.Equal(t, listResult, standaloneResult)
}

func TestCheckMultipleFiltersConcatenate(t *testing.T) {
	r := NewReconciler(newAprilCatalog(), "", 0)

	result, err := r.Check(context.Background(), newRequest(
		listFilter("2014-04-04"),
		rangeFilter("2014-04-01", "2014-04-05"),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"2014-04-04", "2014-04-01", "2014-04-02", "2014-04-05"}, partitionValues(result.Available))
	assert.Equal(t, []string{"2014-04-03"}, partitionValues(result.NotAvailable))
}

func TestCheckClassification(t *testing.T) {
	t.Run("non valid status is preserved", func(t *testing.T) {
		catalog := &fakeCatalog{}
		catalog.register("v", constants.DataStatusValid, 0, testStorage)
		catalog.register("v", constants.DataStatusArchived, 1, testStorage)
		r := NewReconciler(catalog, "", 0)

		result, err := r.Check(context.Background(), newRequest(listFilter("v")))
		require.NoError(t, err)
		assert.Equal(t, []string{"v"}, partitionValues(result.Available))
		assert.Equal(t, 0, *result.Available[0].DataVersion)

		catalog.registrations["v"] = catalog.registrations["v"][1:]
		result, err = r.Check(context.Background(), newRequest(listFilter("v")))
		require.NoError(t, err)
		require.Len(t, result.NotAvailable, 1)
		assert.Equal(t, constants.DataStatusArchived, result.NotAvailable[0].Reason)
		assert.Equal(t, 1, *result.NotAvailable[0].DataVersion)
	})

	t.Run("other storage is not registered", func(t *testing.T) {
		catalog := &fakeCatalog{}
		catalog.register("v", constants.DataStatusValid, 0, "OTHER")
		r := NewReconciler(catalog, "", 0)

		result, err := r.Check(context.Background(), newRequest(listFilter("v")))
		require.NoError(t, err)
		require.Len(t, result.NotAvailable, 1)
		assert.Equal(t, constants.ReasonNotRegistered, result.NotAvailable[0].Reason)
	})

	t.Run("storage names are case insensitive", func(t *testing.T) {
		catalog := &fakeCatalog{}
		catalog.register("v", constants.DataStatusValid, 0, "s3_managed")
		r := NewReconciler(catalog, "", 0)

		result, err := r.Check(context.Background(), newRequest(listFilter("v")))
		require.NoError(t, err)
		assert.Len(t, result.Available, 1)
	})

	t.Run("default storage", func(t *testing.T) {
		catalog := &fakeCatalog{}
		catalog.register("a", constants.DataStatusValid, 0, "DEFAULT")
		catalog.register("b", constants.DataStatusValid, 0, "OTHER")
		req := newRequest(listFilter("a", "b"))
		req.StorageNames = nil

		result, err := NewReconciler(catalog, "DEFAULT", 0).Check(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, partitionValues(result.Available))

		result, err = NewReconciler(catalog, "", 0).Check(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, partitionValues(result.Available))
	})

	t.Run("highest valid version wins", func(t *testing.T) {
		catalog := &fakeCatalog{}
		catalog.register("v", constants.DataStatusValid, 0, testStorage)
		catalog.register("v", constants.DataStatusValid, 2, testStorage)
		catalog.register("v", constants.DataStatusValid, 1, testStorage)

		result, err := NewReconciler(catalog, "", 0).Check(context.Background(), newRequest(listFilter("v")))
		require.NoError(t, err)
		require.Len(t, result.Available, 1)
		assert.Equal(t, 2, *result.Available[0].DataVersion)
	})
}

func TestCheckPassesQueryFilters(t *testing.T) {
	catalog := &fakeCatalog{}
	req := newRequest(listFilter("v"))
	version := 3
	req.DataVersion = &version
	req.SubPartitionValues = []string{"A"}

	_, err := NewReconciler(catalog, "", 0).Check(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, catalog.queries, 1)
	assert.Equal(t, RegistrationQuery{
		FormatID:           testFormatID,
		PartitionValue:     "v",
		SubPartitionValues: []string{"A"},
		DataVersion:        &version,
	}, catalog.queries[0])
}

func TestCheckNotRegisteredCarriesRequestedVersion(t *testing.T) {
	req := newRequest(rangeFilter("2014-04-01", "2014-04-05"))
	version := 0
	req.DataVersion = &version

	result, err := NewReconciler(newAprilCatalog(), "", 0).Check(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.NotAvailable, 1)
	assert.Equal(t, "2014-04-03", result.NotAvailable[0].PartitionValue)
	assert.Equal(t, constants.ReasonNotRegistered, result.NotAvailable[0].Reason)
	require.NotNil(t, result.NotAvailable[0].DataVersion)
	assert.Equal(t, 0, *result.NotAvailable[0].DataVersion)

	version = 7
	assert.Equal(t, 0, *result.NotAvailable[0].DataVersion)
}

func TestCheckTooManyValues(t *testing.T) {
	r := NewReconciler(newAprilCatalog(), "", 3)

	_, err := r.Check(context.Background(), newRequest(rangeFilter("2014-04-01", "2014-04-05")))
	assert.ErrorIs(t, err, ErrTooManyPartitionValues)

	_, err = r.Check(context.Background(), newRequest(listFilter("a", "b", "a", "c")))
	assert.NoError(t, err)
}

func TestCheckLookupFailure(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("registrations", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("FindRegistrations", mock.Anything, mock.MatchedBy(func(q RegistrationQuery) bool {
			return q.PartitionValue == "a"
		})).Return([]Registration{{PartitionValue: "a", Status: constants.DataStatusValid, Storages: []string{testStorage}}}, nil)
		catalog.On("FindRegistrations", mock.Anything, mock.Anything).Return(nil, boom)

		result, err := NewReconciler(catalog, "", 0).Check(context.Background(), newRequest(listFilter("a", "b")))
		assert.Nil(t, result)
		assert.True(t, IsLookupError(err))
		assert.ErrorIs(t, err, boom)
		catalog.AssertNumberOfCalls(t, "FindRegistrations", 2)
	})

	t.Run("expected values", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("ExpectedPartitionValues", mock.Anything, testGroup).Return(nil, boom)

		result, err := NewReconciler(catalog, "", 0).Check(context.Background(), newRequest(rangeFilter("a", "z")))
		assert.Nil(t, result)
		assert.True(t, IsLookupError(err))
		catalog.AssertNotCalled(t, "FindRegistrations", mock.Anything, mock.Anything)
	})
}

func TestCheckCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReconciler(newAprilCatalog(), "", 0).Check(ctx, newRequest(listFilter("2014-04-01")))
	assert.ErrorIs(t, err, context.Canceled)
}
