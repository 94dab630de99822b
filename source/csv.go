// Package source 提供 core.ProfileSource 的基础设施实现。
// 接口定义在领域层（core），本包只负责"把记录搬进内存"；
// 字段定型与校验统一由 engine 的 Corpus Builder 完成。
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rushteam/mentorkit/core"
)

// CSV 从本地 CSV 文件读取导师语料。
// 首行为表头，列名即字段名；每个单元格按字符串交付。
// 文件行序即语料序。
type CSV struct {
	Path string
}

func NewCSV(path string) *CSV {
	return &CSV{Path: path}
}

func (s *CSV) Name() string { return "source.csv" }

func (s *CSV) Load(_ context.Context) ([]core.RawProfile, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	out := make([]core.RawProfile, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(core.RawProfile, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *CSV) Close() error { return nil }

var _ core.ProfileSource = (*CSV)(nil)
