package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fft-map-extractor/internal/bitmap"
	"fft-map-extractor/internal/config"
	"fft-map-extractor/internal/export"
	"fft-map-extractor/internal/vfs"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	discImage := flag.String("image", "", "Path to the disc image")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	format := flag.String("format", "", "Output format: webp, bmp or tga (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	only := flag.String("only", "", "Export only the named resource (e.g. FRAME.BIN)")
	allBanks := flag.Bool("all-banks", false, "Export every palette bank, not just the default")

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
	cfg.Resolve(config.Flags{
		DiscImage: *discImage,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
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

	archive, err := vfs.Open(cfg.DiscImage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	exported, failed := 0, 0
	for _, desc := range bitmap.DescList {
		if *only != "" && !strings.EqualFold(*only, desc.Name) {
			continue
		}
		n, err := exportDesc(archive, desc, cfg, outFormat, *allBanks)
		exported += n
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", desc.Name, err)
			continue
		}
		fmt.Printf("%s: %d files\n", desc.Name, n)
	}

	fmt.Printf("Exported %d files to %s\n", exported, cfg.OutputDir)
	if failed > 0 {
		os.Exit(1)
	}
}

// exportDesc writes every logical image of one descriptor, either at its
// default palette bank or across all of them.
func exportDesc(archive *vfs.Archive, desc bitmap.Desc, cfg config.Config, format export.Format, allBanks bool) (int, error) {
	file, err := archive.ReadFile(desc.Entry)
	if err != nil {
		return 0, err
	}

	base := strings.TrimSuffix(desc.Name, filepath.Ext(desc.Name))
	banks := []int{desc.PalDefault}
	if allBanks {
		banks = banks[:0]
		for b := 0; b < desc.PalCount; b++ {
			banks = append(banks, b)
		}
	}

	files := 0
	for repeat := 0; repeat < desc.Repeats(); repeat++ {
		for _, bank := range banks {
			img, err := bitmap.DecodeDesc(file, desc, repeat, bank)
			if err != nil {
				return files, err
			}

			name := fmt.Sprintf("%s_%03d_bank%03d%s", base, repeat, bank, format.Ext())
			if desc.Repeats() == 1 && !allBanks {
				name = base + format.Ext()
			}
			path := filepath.Join(cfg.OutputDir, strings.ToLower(base), name)
			if err := export.WriteImage(path, export.Scale(export.ToImage(&img), cfg.Scale), format); err != nil {
				return files, err
			}
			files++
		}
	}
	return files, nil
}
