package engine

import (
	"strings"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/pkg/conv"
)

// requiredFields 是每条导师记录的必填字段。
// 任何一条记录缺失任何一个必填字段都会让整次训练失败（SchemaError），
// 这是启动期错误，绝不会发生在请求期。
var requiredFields = []string{
	core.FieldMentorID,
	core.FieldName,
	core.FieldTitle,
	core.FieldSkills,
	core.FieldExperience,
	core.FieldIndustry,
}

// BuildCorpus 把来源层的未定型记录规整为只读语料。
// 输出顺序与输入一致（语料序即 tie-break 依据）。
// 可选字段 shared_background 缺失时取空串，不报错。
func BuildCorpus(raw []core.RawProfile) ([]core.Mentor, error) {
	corpus := make([]core.Mentor, 0, len(raw))
	for _, rec := range raw {
		m, err := buildMentor(rec)
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, m)
	}
	return corpus, nil
}

func buildMentor(rec core.RawProfile) (core.Mentor, error) {
	for _, field := range requiredFields {
		if _, ok := rec[field]; !ok {
			return core.Mentor{}, core.NewSchemaError(field)
		}
	}

	m := core.Mentor{
		ID:               stringField(rec, core.FieldMentorID),
		Name:             stringField(rec, core.FieldName),
		Title:            stringField(rec, core.FieldTitle),
		Skills:           skillsField(rec),
		Experience:       stringField(rec, core.FieldExperience),
		Industry:         stringField(rec, core.FieldIndustry),
		SharedBackground: stringField(rec, core.FieldSharedBackground),
	}

	// 特征文本：skills + experience + industry + shared_background 固定顺序拼接。
	m.FeatureText = strings.TrimSpace(strings.Join([]string{
		m.Skills, m.Experience, m.Industry, m.SharedBackground,
	}, " "))

	return m, nil
}

func stringField(rec core.RawProfile, field string) string {
	s, _ := conv.ToString(rec[field])
	return s
}

// skillsField 兼容 skills 的两种来源形态：字符串直接保留，
// 列表（JSON 来源常见）以 ", " 拼接为与 CSV 相同的逗号文本。
func skillsField(rec core.RawProfile) string {
	v := rec[core.FieldSkills]
	if s, ok := conv.ToString(v); ok {
		return s
	}
	if list := conv.SliceAnyToString(v); list != nil {
		return strings.Join(list, ", ")
	}
	if list, ok := v.([]string); ok {
		return strings.Join(list, ", ")
	}
	return ""
}
