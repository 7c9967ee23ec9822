package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyPartitionValues 解析出的分区值超过上限
	ErrTooManyPartitionValues = errors.New("too many partition values")
	// ErrNoPartitionKeyGroup 范围过滤需要格式关联分区键组
	ErrNoPartitionKeyGroup = errors.New("partition value range requires a partition key group")
)

// LookupError 目录读取失败, 整个请求失败且不重试
type LookupError struct {
	Op  string
	Key string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("catalog lookup %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsLookupError 判断是否为目录读取失败
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}
