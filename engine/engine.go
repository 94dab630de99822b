package engine

import (
	"context"
	"math"
	"sync"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pipeline"
	"github.com/rushteam/mentorkit/rerank"
)

// State 是引擎生命周期状态。
// 合法迁移：Uninitialized → Training → Ready（成功）
// 或 Uninitialized → Training → Failed（任一构建步骤失败）。
// Ready 与 Failed 均为终态：失败不自动重试，重启进程是唯一恢复路径。
type State string

const (
	StateUninitialized State = "uninitialized"
	StateTraining      State = "training"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

// topN 的对外契约边界，传输层已校验，这里只做防御性钳制。
const (
	MinTopN = 1
	MaxTopN = 10
)

// Engine 是匹配引擎的组合根：持有训练产出的只读状态
// （语料、词表、IDF、语料矩阵）与请求期执行的 Pipeline。
//
// 并发模型：Train 在启动期同步执行一次；进入 Ready 后全部状态只读，
// 任意数量的请求可并发调用 Recommend，单次状态位读取之外无任何锁。
type Engine struct {
	source core.ProfileSource
	extra  []pipeline.Node // 插在匹配与截断之间的可选节点（如 filter.Node）

	mu     sync.RWMutex
	state  State
	reason string

	corpus []core.Mentor
	model  *Model
	pipe   *pipeline.Pipeline
}

// Option 配置 Engine。
type Option func(*Engine)

// WithNodes 在匹配节点之后、TopN 截断之前插入自定义节点。
// 默认不插任何节点，此时引擎行为即纯粹的"全量打分 → 排序 → 截断"。
func WithNodes(nodes ...pipeline.Node) Option {
	return func(e *Engine) {
		e.extra = append(e.extra, nodes...)
	}
}

// New 创建未初始化的引擎。必须先 Train 成功才能 Recommend。
func New(source core.ProfileSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		state:  StateUninitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Train 执行一次性训练：加载语料 → 规整 → 建词表/IDF/矩阵 → 组装 Pipeline。
// 只能从 Uninitialized 进入；任何失败都把引擎固定在 Failed 并保存原因。
func (e *Engine) Train(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateUninitialized {
		e.mu.Unlock()
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInternalError,
			"engine: training already attempted")
	}
	e.state = StateTraining
	e.mu.Unlock()

	raw, err := e.source.Load(ctx)
	if err != nil {
		return e.fail(err)
	}

	corpus, err := BuildCorpus(raw)
	if err != nil {
		return e.fail(err)
	}

	model, err := BuildModel(corpus)
	if err != nil {
		return e.fail(err)
	}

	nodes := make([]pipeline.Node, 0, len(e.extra)+2)
	nodes = append(nodes, &MatchNode{Model: model, Corpus: corpus})
	nodes = append(nodes, e.extra...)
	nodes = append(nodes, &rerank.TopNNode{})

	e.mu.Lock()
	e.corpus = corpus
	e.model = model
	e.pipe = &pipeline.Pipeline{Nodes: nodes}
	e.state = StateReady
	e.mu.Unlock()
	return nil
}

func (e *Engine) fail(err error) error {
	e.mu.Lock()
	e.state = StateFailed
	e.reason = err.Error()
	e.mu.Unlock()
	return err
}

// State 返回当前状态。
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Readiness 返回就绪布尔值与原因，供健康探针映射。
// Ready → (true, "")；Failed → (false, 保存的失败原因)；其余 → (false, 状态说明)。
func (e *Engine) Readiness() (bool, string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch e.state {
	case StateReady:
		return true, ""
	case StateFailed:
		return false, e.reason
	default:
		return false, "engine is not initialized"
	}
}

// Recommend 对学员画像执行一次匹配，返回按分数降序的推荐列表。
// 纯计算、无副作用：查询向量与打分列表均为请求私有，
// 同一画像重复调用得到逐字节一致的结果。
//
// 只在 Ready 状态可用，否则返回携带失败原因的 UNAVAILABLE 错误。
func (e *Engine) Recommend(ctx context.Context, menteeID string, profile *core.MenteeProfile, topN int) ([]core.Recommendation, error) {
	e.mu.RLock()
	state, reason := e.state, e.reason
	e.mu.RUnlock()

	if state != StateReady {
		if reason == "" {
			reason = "engine is not initialized"
		}
		return nil, core.NewUnavailableError(reason)
	}

	if profile == nil {
		return nil, core.NewInvalidInputError("profile is required")
	}

	// 防御性钳制：边界层已校验 [1,10]，这里不信任它。
	if topN < MinTopN {
		topN = MinTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}

	rctx := &core.QueryContext{
		MenteeID: menteeID,
		Profile:  profile,
		TopN:     topN,
	}

	items, err := e.pipe.Run(ctx, rctx, nil)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInternalError, err.Error())
	}

	// 结果回接导师记录；四位小数只在此处呈现，排序早已在全精度分数上定型。
	out := make([]core.Recommendation, 0, len(items))
	for _, it := range items {
		mentor := e.corpus[it.Index]
		out = append(out, core.Recommendation{
			MentorID:   mentor.ID,
			Name:       mentor.Name,
			MatchScore: round4(it.Score),
			Details:    mentor.Details(),
		})
	}
	return out, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
