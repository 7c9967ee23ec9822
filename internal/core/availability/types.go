// Package availability 计算请求的分区值在目录中是否可用.
package availability

import "context"

// FormatRef 已解析的业务对象格式
type FormatRef struct {
	ID                int64
	Version           int
	PartitionKey      string
	PartitionKeyGroup string // 使用范围过滤时必填
}

// PartitionValueRange 闭区间 [Start, End]
type PartitionValueRange struct {
	Start string
	End   string
}

// PartitionValueFilter 值列表与范围二选一
type PartitionValueFilter struct {
	PartitionKey    string
	PartitionValues []string
	Range           *PartitionValueRange
}

// Request 可用性检查请求
type Request struct {
	Format FormatRef
	// Filters 与 Filter 可同时出现, Filter 视为追加在末尾的单元素列表
	Filters            []PartitionValueFilter
	Filter             *PartitionValueFilter
	SubPartitionValues []string
	DataVersion        *int
	// StorageNames 指定的存储, 为空时使用 Reconciler.DefaultStorage
	StorageNames []string
}

// Status 单个分区值的检查结果
type Status struct {
	PartitionValue     string   `json:"partition_value"`
	SubPartitionValues []string `json:"sub_partition_values"`
	DataVersion        *int     `json:"business_object_data_version"`
	Reason             string   `json:"reason"`
}

// Result 可用与不可用两个列表互斥, 合起来恰好覆盖解析出的全部分区值
type Result struct {
	Available    []Status `json:"available_statuses"`
	NotAvailable []Status `json:"not_available_statuses"`
}

// RegistrationQuery 单个分区值的登记查询条件
type RegistrationQuery struct {
	FormatID       int64
	PartitionValue string
	// SubPartitionValues 按位置前缀匹配
	SubPartitionValues []string
	DataVersion        *int
}

// Registration 目录中的一条数据登记
type Registration struct {
	PartitionValue     string
	SubPartitionValues []string
	DataVersion        int
	Status             string
	// Storages 处于启用状态的存储单元所在的存储名
	Storages []string
}

// Catalog 只读目录
type Catalog interface {
	// ExpectedPartitionValues 分区键组的合法值, 按自然顺序返回
	ExpectedPartitionValues(ctx context.Context, group string) ([]string, error)
	FindRegistrations(ctx context.Context, query RegistrationQuery) ([]Registration, error)
}
