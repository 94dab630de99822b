// Package config 加载服务配置（YAML）。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是服务的全量配置。
type Config struct {
	Server struct {
		// Addr 是 HTTP 监听地址，默认 ":8080"
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Source struct {
		// Type 选择语料来源：csv / redis，默认 csv
		Type string `yaml:"type"`

		CSV struct {
			Path string `yaml:"path"` // 默认 "mentors.csv"
		} `yaml:"csv"`

		Redis struct {
			Addr string `yaml:"addr"`
			DB   int    `yaml:"db"`
			Key  string `yaml:"key"` // 默认 "mentors"
		} `yaml:"redis"`
	} `yaml:"source"`

	Filter struct {
		// Expr 是可选的 CEL 过滤表达式，命中即剔除候选；空串表示不启用。
		Expr string `yaml:"expr"`
	} `yaml:"filter"`

	Log struct {
		JSON  bool `yaml:"json"`
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// Default 返回带默认值的配置。
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Source.Type = "csv"
	cfg.Source.CSV.Path = "mentors.csv"
	cfg.Source.Redis.Addr = "127.0.0.1:6379"
	cfg.Source.Redis.Key = "mentors"
	return cfg
}

// Load 从 YAML 文件加载配置，文件中未出现的字段保留默认值。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	switch cfg.Source.Type {
	case "csv", "redis":
	default:
		return nil, fmt.Errorf("unknown source type %q (supported: csv, redis)", cfg.Source.Type)
	}

	return cfg, nil
}
