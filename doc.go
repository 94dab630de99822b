// Package mentorkit 是一个导师匹配服务工具包（Mentor Matching Kit）。
//
// 设计要点：
// - Pipeline-first: 匹配逻辑通过 Node 串联（Match → Filter → ReRank/TopN）
// - 训练一次、只读服务：词表/IDF/语料矩阵在启动期一次性构建，Ready 后不可变
// - Node 可扩展: 自定义 Node 即可插拔扩展（表达式过滤、截断策略等）
package mentorkit

import "github.com/rushteam/mentorkit/pipeline"

// 轻量 facade：便于用户直接 import "mentorkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindMatch  = pipeline.KindMatch
	KindFilter = pipeline.KindFilter
	KindReRank = pipeline.KindReRank
)
