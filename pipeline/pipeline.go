package pipeline

import (
	"context"

	"github.com/rushteam/mentorkit/core"
)

// Pipeline 把一次匹配请求拆成可组合的 Node 链（Match → Filter → ReRank）。
// Pipeline 自身无状态，可被任意多个请求并发执行。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.QueryContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
