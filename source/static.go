package source

import (
	"context"

	"github.com/rushteam/mentorkit/core"
)

// Static 是内存实现的来源，用于测试/示例。交付顺序即切片顺序。
type Static struct {
	Profiles []core.RawProfile
}

func NewStatic(profiles []core.RawProfile) *Static {
	return &Static{Profiles: profiles}
}

func (s *Static) Name() string { return "source.static" }

func (s *Static) Load(_ context.Context) ([]core.RawProfile, error) {
	out := make([]core.RawProfile, len(s.Profiles))
	copy(out, s.Profiles)
	return out, nil
}

func (s *Static) Close() error { return nil }

var _ core.ProfileSource = (*Static)(nil)
