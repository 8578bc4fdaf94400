package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
	}
	app.Commands = []cli.Command{
		{Name: "render", Flags: RenderFlags, Action: RenderScene},
		{Name: "scenes", Action: ListScenes},
	}
	return app
}

func TestRenderScene_WritesPPM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sphere.ppm")

	err := newTestApp().Run([]string{"pathtracer", "render", "--scene", "normal-sphere", "--width", "16", "--out", out})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n16 9\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 20)]))
	}
	// Header plus one line per pixel
	if lines := strings.Count(string(data), "\n"); lines != 3+16*9 {
		t.Errorf("Expected %d lines, got %d", 3+16*9, lines)
	}
}

func TestRenderScene_SavePasses(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "render.png")

	err := newTestApp().Run([]string{"pathtracer", "render", "--scene", "two-spheres", "--width", "16",
		"--passes", "2", "--save-passes", "--gif", filepath.Join(dir, "progress.gif"), "--out", out})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, name := range []string{"render.png", "render_pass001.png", "render_pass002.png", "progress.gif"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestRenderScene_UnknownScene(t *testing.T) {
	err := newTestApp().Run([]string{"pathtracer", "render", "--scene", "teapot", "--out", filepath.Join(t.TempDir(), "x.png")})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRenderScene_InvalidConfig(t *testing.T) {
	err := newTestApp().Run([]string{"pathtracer", "render", "--scene", "quads", "--tile", "0", "--out", filepath.Join(t.TempDir(), "x.png")})
	if !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestPassOutputPath(t *testing.T) {
	tests := []struct {
		path string
		pass int
		want string
	}{
		{"out/render.png", 1, "out/render_pass001.png"},
		{"frame.ppm", 12, "frame_pass012.ppm"},
		{"noext", 3, "noext_pass003"},
	}

	for _, tt := range tests {
		if got := passOutputPath(tt.path, tt.pass); got != tt.want {
			t.Errorf("passOutputPath(%q, %d) = %q, want %q", tt.path, tt.pass, got, tt.want)
		}
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	want := filepath.Join("output", "cornell-box", "render_20240309_140507.png")
	if got := defaultOutputPath("cornell-box", now); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDescribeWorld(t *testing.T) {
	tests := []struct {
		scene   string
		wantBVH bool
	}{
		{"bouncing-spheres", true},
		{"cornell-box", false},
	}
	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			sc, err := scene.New(tt.scene, scene.Options{Width: 16})
			if err != nil {
				t.Fatalf("scene.New failed: %v", err)
			}
			desc := describeWorld(sc)
			if !strings.Contains(desc, "primitives") {
				t.Errorf("Expected a primitive count in %q", desc)
			}
			if got := strings.Contains(desc, "BVH"); got != tt.wantBVH {
				t.Errorf("describeWorld(%s) = %q, BVH mention %v, want %v", tt.scene, desc, got, tt.wantBVH)
			}
		})
	}
}

func TestFormatPassStats(t *testing.T) {
	history := []renderer.RenderStats{
		{PassNumber: 1, SamplesPerPixel: 1, TotalSamples: 100, PassDuration: 20 * time.Millisecond, TotalDuration: 20 * time.Millisecond},
		{PassNumber: 2, SamplesPerPixel: 2, TotalSamples: 200, PassDuration: 30 * time.Millisecond, TotalDuration: 50 * time.Millisecond},
	}

	table := formatPassStats(history)
	for _, want := range []string{"Samples/pixel", "200", "30ms", "TOTAL", "50ms"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}

func TestFormatSceneList(t *testing.T) {
	table := formatSceneList(scene.List())
	for _, name := range scene.Names() {
		if !strings.Contains(table, name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, table)
		}
	}
}
