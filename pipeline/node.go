package pipeline

import (
	"context"

	"github.com/rushteam/mentorkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindMatch  Kind = "match"  // 匹配阶段：对全量语料打分并排序
	KindFilter Kind = "filter" // 过滤阶段：剔除不符合策略的候选
	KindReRank Kind = "rerank" // 重排阶段：截断/调整最终结果
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 items -> 输出 items"的形态，匹配生成、过滤剔除、TopN 截断
// 都是同一个形状的变换，自定义 Node 即可插拔扩展。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.QueryContext,
		items []*core.Item,
	) ([]*core.Item, error)
}
