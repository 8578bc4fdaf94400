package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize   int   // Size of each square tile in pixels
	MaxPasses  int   // Passes to render; 0 renders until cancelled or the scene's sample cap
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile samplers
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:   32,
		MaxPasses:  0,
		NumWorkers: 0,
		Seed:       42,
	}
}

func (c ProgressiveConfig) validate() error {
	if c.TileSize <= 0 || c.MaxPasses < 0 || c.NumWorkers < 0 {
		return fmt.Errorf("%w: tile size %d, max passes %d, workers %d",
			ErrInvalidConfig, c.TileSize, c.MaxPasses, c.NumWorkers)
	}
	return nil
}

// ProgressiveRaytracer accumulates one sample per pixel per pass and hands out
// a gamma-corrected snapshot of the running mean after every pass.
// A ProgressiveRaytracer renders a single image; once it is closed it cannot
// be restarted.
type ProgressiveRaytracer struct {
	scene         *scene.Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	currentPass   int
	pixelStats    [][]PixelStats // Running means in global image coordinates
	workerPool    *WorkerPool
	logger        core.Logger
	startTime     time.Time
	totalSamples  int
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(sc *scene.Scene, config ProgressiveConfig, logger core.Logger) (*ProgressiveRaytracer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	width, height := sc.Camera.Width(), sc.Camera.Height()
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	return &ProgressiveRaytracer{
		scene:      sc,
		width:      width,
		height:     height,
		config:     config,
		tiles:      tiles,
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(NewRaytracer(sc), config.NumWorkers, len(tiles)),
		logger:     logger,
	}, nil
}

// PassLimit returns the number of passes this render will run, or 0 when it
// runs until cancelled. The scene's samples-per-pixel cap bounds the passes
// because every pass adds exactly one sample to each pixel.
func (pr *ProgressiveRaytracer) PassLimit() int {
	limit := pr.config.MaxPasses
	if spp := pr.scene.Config.SamplesPerPixel; spp > 0 && (limit == 0 || spp < limit) {
		limit = spp
	}
	return limit
}

// Close stops the worker pool
func (pr *ProgressiveRaytracer) Close() {
	pr.workerPool.Stop()
}

// RenderPass renders the next pass and returns a snapshot of the image.
// Passes never overlap: every tile result is collected before it returns.
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	passNumber := pr.currentPass + 1
	passStart := time.Now()
	if passNumber == 1 {
		pr.startTime = passStart
		pr.workerPool.Start()
	}

	for _, tile := range pr.tiles {
		err := pr.workerPool.SubmitTask(TileTask{
			Ctx:        ctx,
			Tile:       tile,
			PixelStats: pr.pixelStats,
		})
		if err != nil {
			return nil, RenderStats{}, err
		}
	}

	// Drain every result even after a failure so the next pass starts clean
	var firstErr error
	passSamples := 0
	for range pr.tiles {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, ErrWorkerPoolClosed
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		passSamples += result.Samples
	}
	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	pr.currentPass = passNumber
	pr.totalSamples += passSamples
	stats := RenderStats{
		PassNumber:      passNumber,
		SamplesPerPixel: passNumber,
		TotalPixels:     pr.width * pr.height,
		TotalSamples:    pr.totalSamples,
		PassDuration:    time.Since(passStart),
		TotalDuration:   time.Since(pr.startTime),
	}
	return pr.snapshot(), stats, nil
}

// snapshot gamma-corrects the running means into a fresh buffer
func (pr *ProgressiveRaytracer) snapshot() *PixelBuffer {
	buf := NewPixelBuffer(pr.width, pr.height)
	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			buf.Set(x, y, pr.pixelStats[y][x].GetColor().GammaCorrect())
		}
	}
	return buf
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Buffer     *PixelBuffer // Owned by the receiver; the renderer never touches it again
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive renders passes in a background goroutine and sends a
// snapshot after each one. The pass channel is closed when rendering ends; a
// cancelled context or a failed pass is reported on the error channel.
// Nobody reading the pass channel is treated like a cancellation once ctx is done.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.Close()

		limit := pr.PassLimit()
		if limit > 0 {
			pr.logger.Printf("Starting progressive rendering: %dx%d, %d passes, %d workers\n",
				pr.width, pr.height, limit, pr.workerPool.GetNumWorkers())
		} else {
			pr.logger.Printf("Starting progressive rendering: %dx%d, unbounded, %d workers\n",
				pr.width, pr.height, pr.workerPool.GetNumWorkers())
		}

		for pass := 1; limit == 0 || pass <= limit; pass++ {
			// Check for cancellation before starting this pass
			if err := ctx.Err(); err != nil {
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- fmt.Errorf("%w: %w", ErrInterrupted, err)
				return
			}

			buf, stats, err := pr.RenderPass(ctx)
			if err != nil {
				pr.logger.Printf("Pass %d failed: %v\n", pass, err)
				errChan <- err
				return
			}

			pr.logger.Printf("Pass %d completed in %v\n", pass, stats.PassDuration)

			result := PassResult{
				PassNumber: pass,
				Buffer:     buf,
				Stats:      stats,
				IsLast:     pass == limit,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				pr.logger.Printf("Consumer gone after pass %d, stopping\n", pass)
				errChan <- fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
				return
			}
		}
	}()

	return passChan, errChan
}

// RenderPasses synchronously renders exactly n passes and returns the final
// snapshot. It closes the raytracer when done.
func (pr *ProgressiveRaytracer) RenderPasses(ctx context.Context, n int) (*PixelBuffer, RenderStats, error) {
	if n <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: pass count %d", ErrInvalidConfig, n)
	}
	defer pr.Close()

	var buf *PixelBuffer
	var stats RenderStats
	for pass := 1; pass <= n; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		var err error
		buf, stats, err = pr.RenderPass(ctx)
		if err != nil {
			return nil, RenderStats{}, err
		}
	}
	return buf, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int             // Unique tile identifier, also its index in the grid
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Sampler core.Sampler    // Owned by whichever worker renders this tile
}

// NewTile creates a tile whose sampler is seeded from the render seed and the tile ID
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed*7919 + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
