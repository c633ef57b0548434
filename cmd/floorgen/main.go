// Package main generates dungeon floors in bulk, writes them as YAML
// snapshots and checks that every one is solvable.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/delvecore/internal/dungeon"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/world"
)

// FloorFile is one generated floor as written to disk.
type FloorFile struct {
	Batch       string         `yaml:"batch"`
	Seed        int64          `yaml:"seed"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Solvable    bool           `yaml:"solvable"`
	Map         world.Snapshot `yaml:"map"`
}

type options struct {
	firstSeed int64
	count     int
	floor     int
	biome     string
	outDir    string
	ascii     bool
}

func main() {
	var opts options
	flag.Int64Var(&opts.firstSeed, "seed", 1, "First seed of the batch")
	flag.IntVar(&opts.count, "count", 10, "Number of floors to generate")
	flag.IntVar(&opts.floor, "floor", 1, "Floor number")
	flag.StringVar(&opts.biome, "biome", "", "Biome (empty picks the biome for the floor)")
	flag.StringVar(&opts.outDir, "out", "", "Directory for YAML snapshots (empty skips writing)")
	flag.BoolVar(&opts.ascii, "ascii", false, "Print each floor as ASCII")
	check := flag.String("check", "", "Validate an existing snapshot file instead of generating")
	flag.Parse()

	cfg := logger.DefaultConfig()
	cfg.ConsoleEnabled = true
	cfg.FileEnabled = false
	cfg.ApplyEnv()
	if closer, err := logger.Initialize(cfg); err == nil {
		defer closer.Close()
	}

	if *check != "" {
		if err := checkFile(*check); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", *check)
		return
	}

	failures, err := run(context.Background(), opts, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d floors are unsolvable\n", failures, opts.count)
		os.Exit(2)
	}
}

// run generates the batch and returns the number of unsolvable floors.
func run(ctx context.Context, opts options, out io.Writer) (int, error) {
	biome := world.BiomeForFloor(opts.floor)
	if opts.biome != "" {
		b, err := world.ParseBiome(opts.biome)
		if err != nil {
			return 0, err
		}
		biome = b
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	batch := uuid.NewString()
	failures := 0
	for i := 0; i < opts.count; i++ {
		seed := opts.firstSeed + int64(i)
		m := dungeon.Generate(ctx, rand.New(rand.NewSource(seed)), opts.floor, biome)

		solvable := dungeon.IsSolvable(m)
		if !solvable {
			failures++
			logger.Error("unsolvable floor", "batch", batch, "seed", seed, "floor", opts.floor, "biome", biome.String())
		}

		fmt.Fprintf(out, "seed %d: floor %d %s, %d walkable, solvable=%t\n",
			seed, opts.floor, biome, m.WalkableCount(), solvable)
		if opts.ascii {
			fmt.Fprintln(out, renderASCII(m))
		}

		if opts.outDir != "" {
			file := FloorFile{
				Batch:       batch,
				Seed:        seed,
				GeneratedAt: time.Now().UTC(),
				Solvable:    solvable,
				Map:         m.Snapshot(),
			}
			path := filepath.Join(opts.outDir, fmt.Sprintf("floor-%d-seed-%d.yaml", opts.floor, seed))
			if err := writeFloorFile(path, file); err != nil {
				return failures, err
			}
		}
	}
	return failures, nil
}

func writeFloorFile(path string, file FloorFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readFloorFile(path string) (FloorFile, error) {
	var file FloorFile
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}

// checkFile replays a snapshot without regenerating it and verifies the
// exit is reachable.
func checkFile(path string) error {
	file, err := readFloorFile(path)
	if err != nil {
		return err
	}
	m, err := world.FromSnapshot(file.Map)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !m.HasValidExit() {
		return fmt.Errorf("%s: exit is missing or not a down staircase", path)
	}
	if !dungeon.IsSolvable(m) {
		return fmt.Errorf("%s: exit is unreachable from the start", path)
	}
	return nil
}

// renderASCII draws the floor one row per line.
func renderASCII(m *world.Map) string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := world.Pos(x, y)
			if p == m.Start && m.TypeAt(p).IsGround() {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(m.Tile(p).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
