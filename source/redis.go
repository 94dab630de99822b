package source

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/mentorkit/core"
)

// Redis 从 Redis hash 读取导师语料：field 为导师 ID，value 为 JSON 记录。
// hash 无序，Load 按 field 字典序交付，保证语料序在重启间可复现。
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis 创建 Redis 来源，构造时 Ping 一次，连不上直接失败。
func NewRedis(addr string, db int, key string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client, key: key}, nil
}

func (s *Redis) Name() string { return "source.redis" }

func (s *Redis) Load(ctx context.Context) ([]core.RawProfile, error) {
	vals, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", s.key, err)
	}

	fields := make([]string, 0, len(vals))
	for field := range vals {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]core.RawProfile, 0, len(fields))
	for _, field := range fields {
		var rec core.RawProfile
		if err := json.Unmarshal([]byte(vals[field]), &rec); err != nil {
			return nil, fmt.Errorf("redis field %s: %w", field, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Redis) Close() error { return s.client.Close() }

var _ core.ProfileSource = (*Redis)(nil)
