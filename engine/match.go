package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pipeline"
	"github.com/rushteam/mentorkit/pkg/utils"
)

// matchShardSize 是并行打分的分片大小，小语料退化为单 goroutine。
const matchShardSize = 512

// MatchNode 是匹配 Node：把查询文本向量化后对全量语料打分并排序。
// 分数是两个单位向量的点积（即余弦相似度），全精度参与排序；
// 同分时保持语料序（稳定排序），这是唯一的 tie-break 规则。
//
// 零分候选同样进入结果：查询全部词项不在词表内时，
// 输出即语料序的全零分列表，这是合法的退化情形而非错误。
type MatchNode struct {
	Model  *Model
	Corpus []core.Mentor
}

func (n *MatchNode) Name() string        { return "match.tfidf" }
func (n *MatchNode) Kind() pipeline.Kind { return pipeline.KindMatch }

func (n *MatchNode) Process(
	ctx context.Context,
	rctx *core.QueryContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	query := n.Model.Vectorizer().Vector(rctx.Profile.QueryText())

	items := make([]*core.Item, n.Model.Docs())

	// 分片并发打分：每个分片只写自己的下标区间，结果与串行完全一致。
	eg, _ := errgroup.WithContext(ctx)
	for start := 0; start < len(items); start += matchShardSize {
		end := start + matchShardSize
		if end > len(items) {
			end = len(items)
		}
		start, end := start, end
		eg.Go(func() error {
			for i := start; i < end; i++ {
				it := core.NewItem(i, n.Corpus[i].ID)
				it.Score = query.Dot(n.Model.DocVector(i))
				it.PutLabel("match_source", utils.Label{Value: "tfidf", Source: "match"})
				it.PutLabel("industry", utils.Label{Value: n.Corpus[i].Industry, Source: "match"})
				items[i] = it
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 稳定排序：分数降序，同分保持语料序升序。
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items, nil
}
