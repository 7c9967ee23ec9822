package clusterdef

import (
	"errors"
	"fmt"
)

// ErrorKind 配置错误种类
type ErrorKind int

const (
	MissingRequiredField ErrorKind = iota + 1
	BlankListElement
	NegativeOrZeroValue
	MutuallyExclusiveFieldsSet
	DependentFieldMissingPrerequisite
	ValueOutOfRange
)

var kindNames = map[ErrorKind]string{
	MissingRequiredField:              "MissingRequiredField",
	BlankListElement:                  "BlankListElement",
	NegativeOrZeroValue:               "NegativeOrZeroValue",
	MutuallyExclusiveFieldsSet:        "MutuallyExclusiveFieldsSet",
	DependentFieldMissingPrerequisite: "DependentFieldMissingPrerequisite",
	ValueOutOfRange:                   "ValueOutOfRange",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConfigurationError 集群定义不合法, 属于调用方输入错误, 不应重试
type ConfigurationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// AsConfigurationError 判断并提取配置错误
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}
