// cmd/hostpulse/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostpulse/hostpulse/pkg/config"
	"github.com/hostpulse/hostpulse/pkg/evaluator"
	"github.com/hostpulse/hostpulse/pkg/models"
	"github.com/hostpulse/hostpulse/pkg/report"
	"github.com/hostpulse/hostpulse/pkg/sampler"
	"github.com/hostpulse/hostpulse/pkg/scheduler"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to JSON config file")
	interval := flag.Duration("interval", 0, "sample interval (overrides config)")
	watch := flag.Bool("watch", false, "keep sampling and re-rendering every interval")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
			log.Printf("failed to load config: %v", err)
			return 2
		}
	}

	if *interval > 0 {
		cfg.Interval = config.Duration(*interval)
	}

	if *noColor {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("invalid configuration: %v", err)
		return 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("received signal %v, shutting down", sig)
		cancel()
	}()

	smp := sampler.NewSampler(sampler.NewProcSource(), sampler.ExcludeFSTypes(cfg.ExcludeFSTypes...))
	renderer := report.NewRenderer(os.Stdout, cfg.NoColor)

	if *watch {
		return runWatch(ctx, &cfg, smp, renderer)
	}

	return runOnce(ctx, &cfg, smp, renderer)
}

// runOnce samples twice, one interval apart, so the rate and CPU
// metrics cover a real measurement window, then renders a single
// report. The exit code reflects the overall status.
func runOnce(ctx context.Context, cfg *config.Config, smp *sampler.Sampler, renderer *report.Renderer) int {
	_, counters := smp.Sample(ctx, nil)

	select {
	case <-time.After(time.Duration(cfg.Interval)):
	case <-ctx.Done():
		return 0
	}

	snap, _ := smp.Sample(ctx, counters)
	rep := evaluator.Evaluate(snap, &cfg.Thresholds)

	if err := renderer.Render(snap, rep); err != nil {
		log.Printf("failed to render report: %v", err)
		return 2
	}

	return int(rep.Overall)
}

func runWatch(ctx context.Context, cfg *config.Config, smp *sampler.Sampler, renderer *report.Renderer) int {
	// Owned by the tick closure; ticks never overlap, so no locking.
	var counters *models.Counters

	tick := func(ctx context.Context) {
		snap, next := smp.Sample(ctx, counters)
		counters = next

		rep := evaluator.Evaluate(snap, &cfg.Thresholds)

		if err := renderer.Render(snap, rep); err != nil {
			log.Printf("failed to render report: %v", err)
		}
	}

	runner, err := scheduler.NewRunner(time.Duration(cfg.Interval), tick)
	if err != nil {
		log.Printf("failed to create scheduler: %v", err)
		return 2
	}

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("scheduler stopped: %v", err)
		return 2
	}

	return 0
}
