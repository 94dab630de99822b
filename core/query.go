package core

import "strings"

// MenteeProfile 是一次匹配请求携带的学员画像。
// 三个字段按 skills（逗号拼接）→ career_goals → industry_preference 的固定顺序
// 合成查询文本，顺序与训练语料的特征拼接保持同一套分词语义。
type MenteeProfile struct {
	Skills             []string `json:"skills"`
	CareerGoals        string   `json:"career_goals"`
	IndustryPreference string   `json:"industry_preference"`
}

// QueryText 合成交给向量化器的查询文本。
func (p *MenteeProfile) QueryText() string {
	return strings.Join([]string{
		strings.Join(p.Skills, ", "),
		p.CareerGoals,
		p.IndustryPreference,
	}, " ")
}

// QueryContext 承载一次请求的上下文，贯穿整个匹配 Pipeline 透传。
// 只在单次请求内存活，请求间互不共享，因此无需任何同步。
type QueryContext struct {
	MenteeID string
	Profile  *MenteeProfile

	// TopN 是期望返回的条数，引擎已钳制到 [1,10]。
	TopN int

	// Params 是请求级扩展参数，供自定义 Node 使用。
	Params map[string]any
}
