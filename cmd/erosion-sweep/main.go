package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"terra-gen/internal/gen"
	"terra-gen/internal/terrain"
)

type paramSet struct {
	inertia      float64
	erosionSpeed float64
	evaporation  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("inertia=%.2f erosion=%.2f evaporation=%.3f", p.inertia, p.erosionSpeed, p.evaporation)
}

type sweepResult struct {
	params     paramSet
	carved     float64
	ruggedness float64
	waterFrac  float64
}

func main() {
	width := flag.Int("width", 128, "map width for sweep runs")
	height := flag.Int("height", 128, "map height for sweep runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	iterations := flag.Int("iterations", 20000, "droplets per candidate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	top := flag.Int("top", 10, "result rows to print")
	flag.Parse()

	inertiaOptions := []float64{0.01, 0.05, 0.15}
	erosionOptions := []float64{0.2, 0.3, 0.5}
	evaporationOptions := []float64{0.005, 0.01, 0.02}

	var sets []paramSet
	for _, inertia := range inertiaOptions {
		for _, erode := range erosionOptions {
			for _, evap := range evaporationOptions {
				sets = append(sets, paramSet{inertia: inertia, erosionSpeed: erode, evaporation: evap})
			}
		}
	}

	baseCfg := gen.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Seed = *seed
	baseCfg.Erosion.Iterations = *iterations
	baseCfg.Settle.FamilyCount = 0
	baseCfg.ProgressEvery = 0

	// Reference surface before erosion, shared by every candidate.
	reference := terrain.NewHeightfield(*width, *height)
	reference.FillFromField(terrain.NewField(*seed, baseCfg.Noise))
	refCells := reference.Cells()

	start := time.Now()
	results := make([]sweepResult, len(sets))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = evaluate(baseCfg, sets[i], refCells)
			}
		}()
	}
	for i := range sets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].carved > results[j].carved
	})

	fmt.Printf("Evaluated %d candidates in %s\n\n", len(sets), time.Since(start).Truncate(time.Millisecond))
	limit := *top
	if limit > len(results) {
		limit = len(results)
	}
	for i := 0; i < limit; i++ {
		r := results[i]
		fmt.Printf("%2d. %s  carved=%.5f rugged=%.5f water=%.1f%%\n",
			i+1, r.params, r.carved, r.ruggedness, 100*r.waterFrac)
	}
}

// evaluate runs one full pipeline with the candidate parameters. Each
// candidate owns its pipeline; the erosion engine itself stays
// single-threaded.
func evaluate(base gen.Config, set paramSet, reference []float64) sweepResult {
	cfg := base
	cfg.Erosion.Inertia = set.inertia
	cfg.Erosion.ErosionSpeed = set.erosionSpeed
	cfg.Erosion.EvaporationSpeed = set.evaporation

	pipeline, err := gen.NewPipeline(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := pipeline.Start(cfg.Seed); err != nil {
		log.Fatal(err)
	}
	for !pipeline.Done() {
		pipeline.Step()
	}

	result := pipeline.Result()
	carved := 0.0
	water := 0
	for i, h := range result.Heights {
		carved += math.Abs(h - reference[i])
		if result.Tiles[i] == terrain.TileWater {
			water++
		}
	}
	total := float64(len(result.Heights))

	return sweepResult{
		params:     set,
		carved:     carved / total,
		ruggedness: meanSlope(result.Heights, result.Width, result.Height),
		waterFrac:  float64(water) / total,
	}
}

// meanSlope averages the central-difference gradient magnitude over the
// map interior.
func meanSlope(heights []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 0
	}
	sum := 0.0
	count := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := (heights[y*w+x+1] - heights[y*w+x-1]) / 2
			gy := (heights[(y+1)*w+x] - heights[(y-1)*w+x]) / 2
			sum += math.Hypot(gx, gy)
			count++
		}
	}
	return sum / float64(count)
}
