package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/funclaw/pkg/embedded"
)

func TestParseCatalogConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		wantRoutes  []string
	}{
		{
			name: "valid catalog",
			yamlContent: `
demos:
  - title: "Fun Claw Game"
    description: "Play the claw machine game!"
    route: "/game"
    icon: "🎮"
  - title: "Modal"
    route: "/modal"
`,
			wantRoutes: []string{"/game", "/modal"},
		},
		{
			name:        "empty catalog",
			yamlContent: "demos: []\n",
			wantRoutes:  []string{},
		},
		{
			name: "missing title",
			yamlContent: `
demos:
  - route: "/game"
`,
			wantErr:     true,
			errContains: "title",
		},
		{
			name: "relative route",
			yamlContent: `
demos:
  - title: "Game"
    route: "game"
`,
			wantErr:     true,
			errContains: "route must start",
		},
		{
			name: "duplicate route",
			yamlContent: `
demos:
  - title: "A"
    route: "/modal"
  - title: "B"
    route: "/modal"
`,
			wantErr:     true,
			errContains: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseCatalogConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			routes := cfg.Routes()
			if len(routes) != len(tt.wantRoutes) {
				t.Fatalf("got %d routes, want %d", len(routes), len(tt.wantRoutes))
			}
			for i := range routes {
				if routes[i] != tt.wantRoutes[i] {
					t.Errorf("routes[%d] = %q, want %q", i, routes[i], tt.wantRoutes[i])
				}
			}
		})
	}
}

func TestLoadCatalogConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		CatalogConfigPath: &fstest.MapFile{Data: []byte("demos:\n  - title: Modal\n    route: /modal\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadCatalogConfig(CatalogConfigPath)
	if err != nil {
		t.Fatalf("LoadCatalogConfig error: %v", err)
	}
	if len(cfg.Demos) != 1 || cfg.Demos[0].Title != "Modal" {
		t.Errorf("unexpected demos: %+v", cfg.Demos)
	}
}
