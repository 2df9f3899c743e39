package main

import (
	"flag"
	"fmt"
	"os"

	"fft-map-extractor/internal/config"
	"fft-map-extractor/internal/mapdata"
	"fft-map-extractor/internal/mesh"
	"fft-map-extractor/internal/vfs"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	discImage := flag.String("image", "", "Path to the disc image")
	mapID := flag.Int("map", -1, "Dump only this map id")
	verbose := flag.Bool("v", false, "Print raw record bytes")

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
	cfg.Resolve(config.Flags{DiscImage: *discImage})

	if cfg.DiscImage == "" {
		fmt.Fprintln(os.Stderr, "Error: no disc image. Use -image flag or config.json.")
		os.Exit(1)
	}

	archive, err := vfs.Open(cfg.DiscImage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	assembler := mapdata.NewAssembler(archive)

	failed := 0
	for _, info := range mapdata.All() {
		if *mapID >= 0 && info.ID != *mapID {
			continue
		}
		if !info.Usable {
			if *mapID >= 0 {
				fmt.Printf("map %d: placeholder, no resources\n", info.ID)
			}
			continue
		}

		if err := dumpMap(assembler, info, *verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "map %d (%s): %v\n", info.ID, info.Name, err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func dumpMap(assembler *mapdata.Assembler, info mapdata.MapInfo, verbose bool) error {
	md, err := assembler.Read(info.ID)
	if err != nil {
		return err
	}

	desc, _ := vfs.Desc(info.File)
	fmt.Printf("map %d: %s (%s, %d records)\n", info.ID, info.Name, desc.Name, len(md.Records))

	for i, rec := range md.Records {
		name := ""
		if d := vfs.DescBySector(rec.Sector); d.Name != "" {
			name = " " + d.Name
		}
		fmt.Printf("  [%2d] %-8s %-22s sector %6d  %7d bytes%s\n",
			i, rec.Type, rec.State, rec.Sector, rec.Length, name)
		if verbose {
			fmt.Printf("       raw % x\n", rec.Raw)
		}
	}

	if md.HasPrimary {
		dumpMesh("primary", &md.Primary)
	}
	if md.HasOverride {
		dumpMesh("override", &md.Override)
	}
	for i := range md.AltMeshes {
		dumpMesh(fmt.Sprintf("alt %d", i), &md.AltMeshes[i])
	}
	for i, tex := range md.Textures {
		fmt.Printf("  texture %d: %dx%d (%s)\n", i, tex.Image.Width, tex.Image.Height, tex.State)
	}

	return nil
}

func dumpMesh(label string, m *mesh.Mesh) {
	meta := m.Meta
	fmt.Printf("  %s mesh (%s): geometry=%v clut=%v lighting=%v terrain=%v\n",
		label, m.State, meta.HasGeometry, meta.HasCLUT, meta.HasLighting, meta.HasTerrain)
	if meta.HasGeometry {
		fmt.Printf("    polygons: %d (tex tri %d, tex quad %d, untex tri %d, untex quad %d)\n",
			meta.PolygonCount, meta.TexTriCount, meta.TexQuadCount, meta.UntexTriCount, meta.UntexQuadCount)
	}
	if meta.HasLighting {
		fmt.Printf("    lights: %d enabled, ambient #%02x%02x%02x\n",
			meta.LightCount, m.Lighting.Ambient.R, m.Lighting.Ambient.G, m.Lighting.Ambient.B)
	}
	if meta.HasTerrain {
		fmt.Printf("    terrain: %dx%d\n", m.Terrain.XCount, m.Terrain.ZCount)
	}
}
