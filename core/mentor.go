package core

import "strings"

// Mentor 是匹配链路中候选导师的统一承载结构。
// 由 Corpus Builder 在训练期一次性构建，之后只读；
// 切片中的位置（语料序）是同分时的唯一决定性排序依据，训练后不可重排。
type Mentor struct {
	ID         string // 导师 ID
	Name       string
	Title      string
	Skills     string // 逗号分隔的技能文本，展示时按逗号拆分
	Experience string
	Industry   string

	// SharedBackground 是可选的补充背景字段，缺失时为空串。
	SharedBackground string

	// FeatureText 是参与匹配的特征文本：
	// skills + experience + industry + shared_background 以空格拼接。
	FeatureText string
}

// SkillsList 把存储的技能文本按逗号拆分并去除首尾空白，用于展示。
func (m *Mentor) SkillsList() []string {
	if m.Skills == "" {
		return []string{}
	}
	parts := strings.Split(m.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// MentorDetails 是推荐结果中的导师展示字段。
type MentorDetails struct {
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Industry   string   `json:"industry"`
}

// Recommendation 是一条推荐结果：导师标识 + 匹配分 + 展示字段。
// MatchScore 取值 [0,1]，对外呈现时保留 4 位小数（排序基于全精度分数）。
type Recommendation struct {
	MentorID   string        `json:"mentor_id"`
	Name       string        `json:"name"`
	MatchScore float64       `json:"match_score"`
	Details    MentorDetails `json:"details"`
}

// Details 构建导师的展示字段。
func (m *Mentor) Details() MentorDetails {
	return MentorDetails{
		Title:      m.Title,
		Skills:     m.SkillsList(),
		Experience: m.Experience,
		Industry:   m.Industry,
	}
}
