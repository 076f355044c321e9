package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/matchnet/matchnet/pkg/config"
	"github.com/matchnet/matchnet/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"html"}},
		{"svg", []string{"svg"}},
		{"html,png", []string{"html", "png"}},
		{"html, png", []string{"html", "png"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	want := filepath.Join("/tmp/xdg-test", appName)
	if dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.BaseSize = 15
	cfg.Render.Physics = false

	opts := pipelineOptions(cfg, "full.json", "view.json")
	if opts.FullPath != "full.json" || opts.ViewPath != "view.json" {
		t.Errorf("paths = %q/%q", opts.FullPath, opts.ViewPath)
	}
	if opts.BaseSize != 15 {
		t.Errorf("BaseSize = %v, want 15", opts.BaseSize)
	}
	if opts.Physics {
		t.Error("Physics should carry over from config")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"analyze", "rank", "render", "serve", "tui", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestWriteArtifactsPaths(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		pipeline.FormatHTML: []byte("<html>"),
		pipeline.FormatJSON: []byte("{}"),
	}

	// Single format with explicit output keeps the name as given.
	out := filepath.Join(dir, "net.html")
	paths, err := writeArtifacts(artifacts, []string{pipeline.FormatHTML}, "full.json", out)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Errorf("paths = %v, want [%s]", paths, out)
	}

	// Multiple formats derive from the base path.
	base := filepath.Join(dir, "tournament")
	paths, err = writeArtifacts(artifacts, []string{pipeline.FormatHTML, pipeline.FormatJSON}, "full.json", base)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 entries", paths)
	}
	if paths[0] != base+".html" || paths[1] != base+".json" {
		t.Errorf("paths = %v", paths)
	}
}
