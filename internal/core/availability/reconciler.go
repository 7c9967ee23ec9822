package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"data-catalog/pkg/constants"
)

// Reconciler 无状态, 可并发使用
type Reconciler struct {
	Catalog Catalog
	// DefaultStorage 请求未指定存储时使用, 为空表示任意存储
	DefaultStorage string
	// MaxResolvedValues 单次请求解析出的分区值上限, 0 表示不限制
	MaxResolvedValues int
}

func NewReconciler(catalog Catalog, defaultStorage string, maxResolvedValues int) *Reconciler {
	return &Reconciler{
		Catalog:           catalog,
		DefaultStorage:    defaultStorage,
		MaxResolvedValues: maxResolvedValues,
	}
}

// Check 解析分区值并逐个分类, 任何读取失败都不返回部分结果
func (r *Reconciler) Check(ctx context.Context, req *Request) (*Result, error) {
	values, err := r.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if r.MaxResolvedValues > 0 && len(values) > r.MaxResolvedValues {
		return nil, fmt.Errorf("%w: %d resolved, at most %d allowed",
			ErrTooManyPartitionValues, len(values), r.MaxResolvedValues)
	}

	storages := r.designatedStorages(req.StorageNames)
	result := &Result{
		Available:    []Status{},
		NotAvailable: []Status{},
	}

	for _, value := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		regs, err := r.Catalog.FindRegistrations(ctx, RegistrationQuery{
			FormatID:           req.Format.ID,
			PartitionValue:     value,
			SubPartitionValues: req.SubPartitionValues,
			DataVersion:        req.DataVersion,
		})
		if err != nil {
			return nil, &LookupError{Op: "registrations", Key: value, Err: err}
		}

		status, available := classify(value, regs, storages, req.DataVersion)
		if available {
			result.Available = append(result.Available, status)
		} else {
			result.NotAvailable = append(result.NotAvailable, status)
		}
	}
	return result, nil
}

// resolve 按过滤器顺序展开分区值, 重复值保留首次出现
func (r *Reconciler) resolve(ctx context.Context, req *Request) ([]string, error) {
	filters := req.Filters
	if req.Filter != nil {
		filters = append(append([]PartitionValueFilter{}, filters...), *req.Filter)
	}

	var values []string
	for _, f := range filters {
		if f.Range == nil {
			values = append(values, f.PartitionValues...)
			continue
		}

		expanded, err := r.expandRange(ctx, req.Format.PartitionKeyGroup, *f.Range)
		if err != nil {
			return nil, err
		}
		values = append(values, expanded...)
	}
	return lo.Uniq(values), nil
}

func (r *Reconciler) expandRange(ctx context.Context, group string, rng PartitionValueRange) ([]string, error) {
	if rng.Start == rng.End {
		return []string{rng.Start}, nil
	}
	if rng.Start > rng.End {
		return nil, nil
	}
	if group == "" {
		return nil, ErrNoPartitionKeyGroup
	}

	expected, err := r.Catalog.ExpectedPartitionValues(ctx, group)
	if err != nil {
		return nil, &LookupError{Op: "expected partition values", Key: group, Err: err}
	}
	return lo.Filter(expected, func(v string, _ int) bool {
		return v >= rng.Start && v <= rng.End
	}), nil
}

// designatedStorages 返回大写的存储名集合, nil 表示任意存储
func (r *Reconciler) designatedStorages(names []string) map[string]struct{} {
	if len(names) == 0 && r.DefaultStorage != "" {
		names = []string{r.DefaultStorage}
	}
	if len(names) == 0 {
		return nil
	}
	return lo.SliceToMap(names, func(name string) (string, struct{}) {
		return strings.ToUpper(strings.TrimSpace(name)), struct{}{}
	})
}

func inStorage(reg Registration, storages map[string]struct{}) bool {
	if storages == nil {
		return len(reg.Storages) > 0
	}
	return lo.SomeBy(reg.Storages, func(name string) bool {
		_, ok := storages[strings.ToUpper(name)]
		return ok
	})
}

// classify 有 VALID 且位于指定存储的登记即可用, 取最高版本;
// 否则以最新版本的状态为原因, 最新版本为 VALID 时视为未登记, 未登记时回填请求的数据版本
func classify(value string, regs []Registration, storages map[string]struct{}, dataVersion *int) (Status, bool) {
	candidates := lo.Filter(regs, func(reg Registration, _ int) bool {
		return reg.Status == constants.DataStatusValid && inStorage(reg, storages)
	})
	if len(candidates) > 0 {
		best := latest(candidates)
		return toStatus(best, best.Status), true
	}

	if len(regs) > 0 {
		if newest := latest(regs); newest.Status != constants.DataStatusValid {
			return toStatus(newest, newest.Status), false
		}
	}
	status := Status{PartitionValue: value, Reason: constants.ReasonNotRegistered}
	if dataVersion != nil {
		version := *dataVersion
		status.DataVersion = &version
	}
	return status, false
}

func latest(regs []Registration) Registration {
	return lo.MaxBy(regs, func(a, b Registration) bool {
		return a.DataVersion > b.DataVersion
	})
}

func toStatus(reg Registration, reason string) Status {
	version := reg.DataVersion
	return Status{
		PartitionValue:     reg.PartitionValue,
		SubPartitionValues: reg.SubPartitionValues,
		DataVersion:        &version,
		Reason:             reason,
	}
}
