package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/funclaw/pkg/embedded"
)

// CatalogConfigPath 是首页演示列表配置文件的路径
const CatalogConfigPath = "data/catalog.yaml"

// DemoItem 首页的一张演示卡片
type DemoItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Route       string `yaml:"route"`          // 点击后导航到的路由，如 "/game"
	Icon        string `yaml:"icon,omitempty"` // 可选图标
}

// CatalogConfig 首页演示列表
type CatalogConfig struct {
	Demos []DemoItem `yaml:"demos"`
}

// LoadCatalogConfig 从嵌入文件系统加载演示列表
func LoadCatalogConfig(path string) (*CatalogConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalogConfig(data)
}

// ParseCatalogConfig 解析演示列表 YAML
func ParseCatalogConfig(data []byte) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := validateCatalog(&cfg); err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}

	return &cfg, nil
}

// validateCatalog 验证演示列表
func validateCatalog(cfg *CatalogConfig) error {
	seen := make(map[string]bool, len(cfg.Demos))
	for i, demo := range cfg.Demos {
		if demo.Title == "" {
			return fmt.Errorf("demos[%d]: title cannot be empty", i)
		}
		if !strings.HasPrefix(demo.Route, "/") {
			return fmt.Errorf("demos[%d]: route must start with '/', got %q", i, demo.Route)
		}
		if seen[demo.Route] {
			return fmt.Errorf("demos[%d]: duplicate route %q", i, demo.Route)
		}
		seen[demo.Route] = true
	}
	return nil
}

// Routes 返回所有演示的路由（按列表顺序）
func (c *CatalogConfig) Routes() []string {
	routes := make([]string, 0, len(c.Demos))
	for _, demo := range c.Demos {
		routes = append(routes, demo.Route)
	}
	return routes
}
