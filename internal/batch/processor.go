// Package batch drives the bulk map export: a worker pool where each
// worker holds its own archive handle, since an archive supports
// sequential use only.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"fft-map-extractor/internal/bitmap"
	"fft-map-extractor/internal/export"
	"fft-map-extractor/internal/mapdata"
	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/vfs"
)

// Config holds all shared settings for a batch run.
type Config struct {
	DiscImage string
	OutputDir string
	Format    export.Format
	Scale     int
	Workers   int
}

// Result holds the outcome of exporting one map.
type Result struct {
	MapID   int
	Name    string
	Files   int
	Success bool
	Error   string
}

// Run exports all given maps using a worker pool.
func Run(cfg Config, maps []mapdata.MapInfo) []Result {
	total := len(maps)
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
					fmt.Printf("  [%d/%d] %.1f maps/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	mapChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			archive, err := vfs.Open(cfg.DiscImage)
			if err != nil {
				for idx := range mapChan {
					results[idx] = Result{MapID: maps[idx].ID, Name: maps[idx].Name, Error: err.Error()}
					processed.Add(1)
				}
				return
			}
			defer archive.Close()

			assembler := mapdata.NewAssembler(archive)
			for idx := range mapChan {
				results[idx] = processMap(cfg, assembler, maps[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range maps {
		mapChan <- i
	}
	close(mapChan)

	wg.Wait()
	close(done)

	return results
}

func processMap(cfg Config, assembler *mapdata.Assembler, info mapdata.MapInfo) Result {
	md, err := assembler.Read(info.ID)
	if err != nil {
		return Result{MapID: info.ID, Name: info.Name, Error: err.Error()}
	}

	files, err := exportMap(cfg, md)
	if err != nil {
		return Result{MapID: info.ID, Name: info.Name, Files: files, Error: err.Error()}
	}

	return Result{MapID: info.ID, Name: info.Name, Files: files, Success: true}
}

// exportMap writes every texture page of the map through every palette
// bank of its primary mesh. Maps without a decoded palette get the raw
// index pages as grayscale instead.
func exportMap(cfg Config, md *mapdata.MapData) (int, error) {
	dir := filepath.Join(cfg.OutputDir, fmt.Sprintf("map_%03d", md.Info.ID))
	files := 0

	var palette bitmap.Image
	if md.HasPrimary && md.Primary.Meta.HasCLUT {
		palette = bitmap.FromCLUT(&md.Primary.CLUT)
	}

	for ti := range md.Textures {
		tex := &md.Textures[ti]

		if !palette.Valid {
			gray := cloneImage(&tex.Image)
			bitmap.ScaleIndexed(&gray)
			path := filepath.Join(dir, fmt.Sprintf("tex%02d_gray%s", ti, cfg.Format.Ext()))
			if err := writeScaled(cfg, path, &gray); err != nil {
				return files, err
			}
			files++
			continue
		}

		for bank := 0; bank < pixel.CLUTBankCount; bank++ {
			page := cloneImage(&tex.Image)
			if err := bitmap.Palettize(&page, &palette, bank); err != nil {
				return files, err
			}
			path := filepath.Join(dir, fmt.Sprintf("tex%02d_bank%02d%s", ti, bank, cfg.Format.Ext()))
			if err := writeScaled(cfg, path, &page); err != nil {
				return files, err
			}
			files++
		}
	}

	return files, nil
}

func writeScaled(cfg Config, path string, img *bitmap.Image) error {
	return export.WriteImage(path, export.Scale(export.ToImage(img), cfg.Scale), cfg.Format)
}

func cloneImage(img *bitmap.Image) bitmap.Image {
	out := *img
	out.Data = make([]byte, len(img.Data))
	copy(out.Data, img.Data)
	return out
}
