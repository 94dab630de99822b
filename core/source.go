package core

import "context"

// RawProfile 是来源层交付的一条未定型导师记录。
// 字段值类型宽松（CSV 给 string，Redis/JSON 可能给 []any），
// 由 Corpus Builder 做定型与必填校验。
type RawProfile map[string]any

// 语料 schema 字段名常量。
const (
	FieldMentorID         = "mentor_id"
	FieldName             = "name"
	FieldTitle            = "title"
	FieldSkills           = "skills"
	FieldExperience       = "experience"
	FieldIndustry         = "industry"
	FieldSharedBackground = "shared_background" // 可选
)

// ProfileSource 是导师语料来源的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（source）实现
//   - Load 只在进程启动训练时调用一次；引擎之后不再回读来源
//   - 返回的记录顺序即语料序，是同分 tie-break 的依据，实现方须保证确定性
//
// 实现：
//   - source.CSV 从本地 CSV 文件读取
//   - source.Redis 从 Redis hash 读取（值为 JSON）
//   - source.Static 直接内存提供，用于测试/示例
type ProfileSource interface {
	// Name 返回来源名称（用于日志）
	Name() string

	// Load 一次性读取全部导师记录
	Load(ctx context.Context) ([]RawProfile, error)

	// Close 关闭连接/释放资源
	Close() error
}
