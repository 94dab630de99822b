package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/mentorkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// getCELEnv 初始化并返回 CEL 环境，定义可用变量。
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("mentee", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Compile 把一条过滤表达式编译为可重复执行的 CEL 程序。
// 表达式在配置加载时编译一次，之后每个请求/每条候选复用执行。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score > 0.1
//   - 标签：label.industry == "Fintech"
//   - 学员上下文：mentee.industry_preference != "Healthcare"
//   - 组合：label.industry == "Fintech" && item.score > 0.2
//
// 注意：访问不存在的 label key 会报错，存在性检查用 label.key != null。
func Compile(expr string) (cel.Program, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	return prg, nil
}

// EvalBool 对单条候选执行已编译的表达式，返回布尔结果。
func EvalBool(prg cel.Program, item *core.Item, rctx *core.QueryContext) (bool, error) {
	out, _, err := prg.Eval(buildInput(item, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
func buildInput(item *core.Item, rctx *core.QueryContext) map[string]any {
	labels := make(map[string]any, len(item.Labels))
	labelAccessor := make(map[string]any, len(item.Labels))
	for k, v := range item.Labels {
		labels[k] = map[string]any{
			"value":  v.Value,
			"source": v.Source,
		}
		// label.industry 直接取 value，便于写短表达式
		labelAccessor[k] = v.Value
	}

	itemMap := map[string]any{
		"index":     item.Index,
		"mentor_id": item.MentorID,
		"score":     item.Score,
		"labels":    labels,
	}

	mentee := map[string]any{
		"id":    rctx.MenteeID,
		"top_n": rctx.TopN,
	}
	if rctx.Profile != nil {
		mentee["skills"] = rctx.Profile.Skills
		mentee["career_goals"] = rctx.Profile.CareerGoals
		mentee["industry_preference"] = rctx.Profile.IndustryPreference
	}

	return map[string]any{
		"item":   itemMap,
		"label":  labelAccessor,
		"mentee": mentee,
	}
}
