package filter

import (
	"context"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pipeline"
	"github.com/rushteam/mentorkit/pkg/utils"
)

// Filter 是过滤器的抽象接口，判断一条候选是否应该被剔除。
// 返回 true 表示剔除，false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断 item 是否应该被剔除
	ShouldFilter(ctx context.Context, rctx *core.QueryContext, item *core.Item) (bool, error)
}

// Node 是过滤 Node，可以组合多个过滤器。
// 任何一个过滤器命中即剔除该候选；过滤器报错时跳过该过滤器而不中断请求。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string {
	return "filter.node"
}

func (n *Node) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *Node) Process(
	ctx context.Context,
	rctx *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		dropped := false
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, item)
			if err != nil {
				// 出错的过滤器放行该候选，但留下痕迹，避免配置坏掉后悄无声息
				item.PutLabel("filter_error", utils.Label{Value: err.Error(), Source: f.Name()})
				continue
			}
			if ok {
				dropped = true
				// 记录剔除原因，用于 explain / 调试
				item.PutLabel("filtered", utils.Label{Value: "true", Source: f.Name()})
				break
			}
		}
		if dropped {
			continue
		}

		out = append(out, item)
	}

	return out, nil
}
