package rerank

import (
	"context"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pipeline"
)

// TopNNode 是 Top-N 截断节点，在匹配排序之后截取前 N 条结果。
// 截断不改变顺序，只缩短列表：len(out) == min(N, len(items))。
//
// 示例：
//
//	pipe := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &engine.MatchNode{...}, // 打分 + 排序
//	        &rerank.TopNNode{},     // 按请求的 top_n 截断
//	    },
//	}
type TopNNode struct {
	// N 要保留的条数。N <= 0 时取请求上下文的 TopN；
	// 两者都未设置则不截断。
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	rctx *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	limit := n.N
	if limit <= 0 && rctx != nil {
		limit = rctx.TopN
	}

	if limit <= 0 || len(items) <= limit {
		return items, nil
	}

	return items[:limit], nil
}
