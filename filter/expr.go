package filter

import (
	"context"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pkg/dsl"
)

// Expr 是表达式驱动的过滤器：配置一条 CEL 表达式，
// 表达式判真的候选被剔除。表达式在构造时编译一次，请求期只执行。
//
// 示例：
//   - `label.industry == "Healthcare"` → 剔除医疗行业的导师
//   - `item.score < 0.05` → 剔除低于分数下限的候选
//   - `label.industry != mentee.industry_preference` → 只保留偏好行业
type Expr struct {
	expr string
	prg  cel.Program
}

// NewExpr 编译表达式并构造过滤器。表达式非法时在此处（配置加载期）报错。
func NewExpr(expr string) (*Expr, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Expr{expr: expr, prg: prg}, nil
}

func (f *Expr) Name() string {
	return "filter.expr"
}

func (f *Expr) ShouldFilter(_ context.Context, rctx *core.QueryContext, item *core.Item) (bool, error) {
	return dsl.EvalBool(f.prg, item, rctx)
}
