package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fft-map-extractor/internal/batch"
	"fft-map-extractor/internal/config"
	"fft-map-extractor/internal/export"
	"fft-map-extractor/internal/mapdata"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	discImage := flag.String("image", "", "Path to the disc image")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	format := flag.String("format", "", "Output format: webp, bmp or tga (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor for previews (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	mapID := flag.Int("map", -1, "Export only this map id")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		DiscImage: *discImage,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Workers:   *workers,
	})

	if cfg.DiscImage == "" {
		fmt.Fprintln(os.Stderr, "Error: no disc image. Use -image flag or config.json.")
		os.Exit(1)
	}

	outFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Select maps
	var maps []mapdata.MapInfo
	for _, m := range mapdata.All() {
		if !m.Usable {
			continue
		}
		if *mapID >= 0 && m.ID != *mapID {
			continue
		}
		maps = append(maps, m)
	}
	if len(maps) == 0 {
		fmt.Println("No maps to export.")
		os.Exit(0)
	}

	fmt.Printf("FFT map texture export → %s\n", cfg.Format)
	fmt.Printf("Maps: %d, Workers: %d\n", len(maps), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		DiscImage: cfg.DiscImage,
		OutputDir: cfg.OutputDir,
		Format:    outFormat,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
	}, maps)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed, files := 0, 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			files += r.Files
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Exported: %d/%d maps, %d files\n", success, len(maps), files)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  map %d (%s): %s\n", e.MapID, e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
