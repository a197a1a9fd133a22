package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"emd-renderer/internal/emd"
	"emd-renderer/internal/postprocess"
	"emd-renderer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	Format      string // "webp" or "tga"
	Workers     int
}

// Result holds the outcome of processing one file.
type Result struct {
	Path     string
	Name     string
	Objects  int
	Verts    int
	Faces    int
	Success  bool
	Error    string
	Warnings []string
}

// Discover walks dir and returns every .emd file, sorted by WalkDir order.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".emd") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	return files, nil
}

// Run renders all files using a worker pool.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, path string) Result {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Path: path, Name: name}

	m, err := emd.ParseFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Warnings = m.Warnings
	res.Objects = len(m.Objects)
	for _, obj := range m.Objects {
		res.Verts += len(obj.Verts)
		res.Faces += len(obj.Faces)
	}
	if res.Verts == 0 {
		res.Error = "no geometry decoded"
		return res
	}

	img := raster.RenderModel(m, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	switch cfg.Format {
	case "tga":
		err = tga.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		res.Error = fmt.Sprintf("encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
