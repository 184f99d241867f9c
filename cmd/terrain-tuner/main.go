package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"terra-gen/internal/core"
	"terra-gen/internal/gen"
	"terra-gen/internal/render"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	preset := flag.String("preset", "default", "generator preset to run")
	seed := flag.Int64("seed", 0, "seed override (0 uses the preset seed)")
	tps := flag.Int("tps", 0, "simulated frame rate for advance pacing (0 = unpaced)")
	pngPath := flag.String("png", "", "write the shaded map as PNG to this path")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Presets()[*preset]
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}

	cfgMap := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		cfgMap[parts[0]] = parts[1]
	}

	pipeline, ok := factory(cfgMap).(*gen.Pipeline)
	if !ok {
		log.Fatalf("preset %q is not a pipeline", *preset)
	}

	if err := pipeline.Start(*seed); err != nil {
		log.Fatal(err)
	}

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	cadence := pipeline.Config().ProgressEvery
	start := time.Now()
	batches := 0
	for !pipeline.Done() {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(500 * time.Microsecond)
			continue
		}
		pipeline.Step()
		batches++
		if cadence > 0 && batches%cadence == 0 {
			s := pipeline.Progress()
			log.Printf("erosion %d/%d droplets, elapsed %s, eta %s",
				s.Completed, s.Total,
				s.Elapsed.Truncate(time.Millisecond),
				s.Remaining.Truncate(time.Millisecond))
		}
	}

	result := pipeline.Result()
	fmt.Printf("Generated %dx%d map in %s (%d advance calls)\n",
		result.Width, result.Height, time.Since(start).Truncate(time.Millisecond), batches)

	printHistogram(result)
	printFamilies(result)
	printParams(pipeline.ParametersSnapshot())

	if *pngPath != "" {
		if err := writePNG(*pngPath, result); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *pngPath)
	}
}

func printHistogram(result *gen.Result) {
	counts := map[string]int{}
	for _, kind := range result.Tiles {
		counts[kind.String()]++
	}
	total := len(result.Tiles)
	fmt.Println("\nTile distribution:")
	for _, name := range []string{"water", "dirt", "grass", "rock"} {
		n := counts[name]
		fmt.Printf("  %-5s %7d (%.1f%%)\n", name, n, 100*float64(n)/float64(total))
	}
}

func printFamilies(result *gen.Result) {
	fmt.Printf("\nFamilies placed: %d/%d", len(result.Families), result.FamiliesRequested)
	if s := result.FamilyShortfall(); s > 0 {
		fmt.Printf(" (shortfall %d)", s)
	}
	fmt.Println()
	for i, fam := range result.Families {
		fmt.Printf("  family %d anchored at (%d,%d):\n", i+1, fam.AnchorX, fam.AnchorY)
		for _, m := range fam.Members {
			fmt.Printf("    #%d %s, age %d, at (%d,%d)\n", m.ID, m.Name, m.Age, m.X, m.Y)
		}
	}
}

func printParams(snap core.ParameterSnapshot) {
	fmt.Println("\nParameters:")
	for _, group := range snap.Groups {
		fmt.Printf("  %s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("    %-18s %s\n", p.Key, p.Value)
		}
	}
}

func writePNG(path string, result *gen.Result) error {
	cells := make([]uint8, len(result.Tiles))
	for i, kind := range result.Tiles {
		cells[i] = uint8(kind)
	}
	img := render.ShadedImage(result.Width, result.Height, cells, result.Heights)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
