package core

import "github.com/rushteam/mentorkit/pkg/utils"

// Item 是匹配链路中的统一承载结构：语料序、分数、标签。
// Index 指向训练期语料中的导师下标；Score 为全精度余弦相似度，
// 呈现层才做小数位截断。Labels 用于 explain / 过滤策略驱动。
type Item struct {
	Index    int
	MentorID string
	Score    float64
	Labels   map[string]utils.Label
}

func NewItem(index int, mentorID string) *Item {
	return &Item{
		Index:    index,
		MentorID: mentorID,
		Score:    0,
		Labels:   make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// GetLabel 获取 Label。
func (it *Item) GetLabel(key string) (utils.Label, bool) {
	if it.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := it.Labels[key]
	return lbl, ok
}
