package core

import "fmt"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 训练期错误（SCHEMA_INVALID / EMPTY_CORPUS）只在启动时出现，被 Engine 捕获为 Failed 状态
//   - 请求期错误（UNAVAILABLE / INVALID_INPUT）作为类型化结果返回调用方，由传输层映射为 HTTP 状态码
//   - 上层通过 Code 判定行为，Message 仅用于人读
type DomainError struct {
	Code    string // 错误代码（如 "EMPTY_CORPUS", "UNAVAILABLE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "engine", "source"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeSchemaInvalid = "SCHEMA_INVALID" // 语料字段缺失（训练期，致命）
	ErrorCodeEmptyCorpus   = "EMPTY_CORPUS"   // 语料为空或分词后词表为空（训练期，致命）
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 引擎未就绪（请求期，可恢复）
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 请求参数无效（请求期，调用方错误）
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleEngine = "engine" // 匹配引擎
	ModuleSource = "source" // 样本来源
	ModuleServer = "server" // 传输层
)

// NewSchemaError 创建字段缺失错误，field 为缺失的必填字段名。
func NewSchemaError(field string) *DomainError {
	return NewDomainError(ModuleEngine, ErrorCodeSchemaInvalid,
		fmt.Sprintf("corpus: required field %q is missing", field))
}

// NewEmptyCorpusError 创建空语料错误。
func NewEmptyCorpusError(message string) *DomainError {
	return NewDomainError(ModuleEngine, ErrorCodeEmptyCorpus, message)
}

// NewUnavailableError 创建引擎不可用错误，reason 为训练失败时保存的原因。
func NewUnavailableError(reason string) *DomainError {
	return NewDomainError(ModuleEngine, ErrorCodeUnavailable,
		fmt.Sprintf("engine is not ready: %s", reason))
}

// NewInvalidInputError 创建请求参数错误。
func NewInvalidInputError(message string) *DomainError {
	return NewDomainError(ModuleServer, ErrorCodeInvalidInput, message)
}

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsSchemaInvalid 检查错误是否为字段缺失。
func IsSchemaInvalid(err error) bool { return hasCode(err, ErrorCodeSchemaInvalid) }

// IsEmptyCorpus 检查错误是否为空语料。
func IsEmptyCorpus(err error) bool { return hasCode(err, ErrorCodeEmptyCorpus) }

// IsUnavailable 检查错误是否为引擎不可用。
func IsUnavailable(err error) bool { return hasCode(err, ErrorCodeUnavailable) }

// IsInvalidInput 检查错误是否为请求参数无效。
func IsInvalidInput(err error) bool { return hasCode(err, ErrorCodeInvalidInput) }
