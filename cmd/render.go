package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/log"
	"github.com/df07/go-progressive-pathtracer/pkg/output"
	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags are the options of the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "scene, s",
		Value:  "two-spheres",
		Usage:  "scene to render (see the scenes command)",
		EnvVar: "PT_SCENE",
	},
	cli.IntFlag{
		Name:   "width",
		Usage:  "image width in pixels (0 keeps the scene default)",
		EnvVar: "PT_WIDTH",
	},
	cli.IntFlag{
		Name:   "passes",
		Usage:  "number of passes to render (0 renders up to the scene's sample cap)",
		EnvVar: "PT_PASSES",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "override the scene's samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "override the scene's maximum bounce depth",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "number of render workers (0 uses every CPU)",
		EnvVar: "PT_WORKERS",
	},
	cli.IntFlag{
		Name:  "tile",
		Value: 32,
		Usage: "tile size in pixels",
	},
	cli.Int64Flag{
		Name:   "seed",
		Value:  42,
		Usage:  "random seed for scene layout and sampling",
		EnvVar: "PT_SEED",
	},
	cli.StringFlag{
		Name:  "texture",
		Usage: "image file for the earth scene",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "output file, .png or .ppm (default output/<scene>/render_<timestamp>.png)",
	},
	cli.StringFlag{
		Name:  "gif",
		Usage: "also write an animated GIF of every pass to this file",
	},
	cli.BoolFlag{
		Name:  "save-passes",
		Usage: "write a snapshot after every pass instead of only the last one",
	},
}

// RenderScene renders a scene progressively and saves the final image.
// SIGINT stops the render after the current tile row and the last completed
// pass is still written.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := scene.Options{
		Width:           ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Seed:            ctx.Int64("seed"),
		TexturePath:     ctx.String("texture"),
	}
	sc, err := scene.New(ctx.String("scene"), opts)
	if err != nil {
		return err
	}

	config := renderer.DefaultProgressiveConfig()
	config.TileSize = ctx.Int("tile")
	config.MaxPasses = ctx.Int("passes")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = ctx.Int64("seed")

	pr, err := renderer.NewProgressiveRaytracer(sc, config, log.Printer{Logger: logger})
	if err != nil {
		return err
	}
	if pr.PassLimit() == 0 {
		logger.Notice("no pass limit; press Ctrl+C to stop and save")
	}

	outPath := ctx.String("out")
	if outPath == "" {
		outPath = defaultOutputPath(sc.Name, time.Now())
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Noticef("rendering %s (%dx%d, %s)", sc.Name, sc.Camera.Width(), sc.Camera.Height(), describeWorld(sc))

	var last *renderer.PassResult
	var history []renderer.RenderStats
	var progression *output.Progression
	if ctx.String("gif") != "" {
		progression = output.NewProgression(20)
	}
	passChan, errChan := pr.RenderProgressive(renderCtx)
	for result := range passChan {
		history = append(history, result.Stats)
		if ctx.Bool("save-passes") {
			if err := output.SaveFile(passOutputPath(outPath, result.PassNumber), result.Buffer); err != nil {
				return err
			}
		}
		if progression != nil {
			progression.AddFrame(result.Buffer)
		}
		last = &result
	}

	renderErr := <-errChan
	if renderErr != nil && !errors.Is(renderErr, renderer.ErrInterrupted) {
		return renderErr
	}
	if last == nil {
		return fmt.Errorf("render stopped before the first pass completed: %w", renderErr)
	}
	if renderErr != nil {
		logger.Warningf("render interrupted after pass %d", last.PassNumber)
	}

	if err := output.SaveFile(outPath, last.Buffer); err != nil {
		return err
	}
	logger.Noticef("saved %s", outPath)

	if progression != nil {
		if err := progression.Save(ctx.String("gif")); err != nil {
			return err
		}
		logger.Noticef("saved %d-frame progression to %s", progression.Len(), ctx.String("gif"))
	}

	displayPassStats(history)
	return nil
}

func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// passOutputPath inserts the pass number before the extension
func passOutputPath(path string, pass int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_pass%03d%s", path[:len(path)-len(ext)], pass, ext)
}

func displayPassStats(history []renderer.RenderStats) {
	if len(history) == 0 {
		return
	}
	logger.Noticef("pass statistics\n%s", formatPassStats(history))
}

func formatPassStats(history []renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Samples/pixel", "Total samples", "Pass time"})
	for _, stat := range history {
		table.Append([]string{
			fmt.Sprintf("%d", stat.PassNumber),
			fmt.Sprintf("%d", stat.SamplesPerPixel),
			fmt.Sprintf("%d", stat.TotalSamples),
			stat.PassDuration.Round(time.Millisecond).String(),
		})
	}
	final := history[len(history)-1]
	table.SetFooter([]string{"", "", "TOTAL", final.TotalDuration.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}

// describeWorld summarizes primitive count and acceleration structure for the startup log
func describeWorld(sc *scene.Scene) string {
	desc := fmt.Sprintf("%d primitives", sc.PrimitiveCount())
	if stats := sc.BVHStats(); stats.TotalNodes > 0 {
		desc += fmt.Sprintf(", BVH %d nodes depth %d", stats.TotalNodes, stats.MaxDepth)
	}
	return desc
}
