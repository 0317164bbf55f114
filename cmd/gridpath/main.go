// Command gridpath explores the grid engines on random maps, either in an
// interactive terminal view or headless for scripts.
//
//	gridpath                      interactive, defaults
//	gridpath -config run.yaml     interactive, settings from YAML
//	gridpath -gen-config run.yaml write the defaults and exit
//	gridpath -headless -engine jps -diagonal
//
// Flags given explicitly override the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "gridpath:", err)
		}
		os.Exit(1)
	}
}

// options are the command-line switches that are not part of Config.
type options struct {
	configPath string
	genConfig  string
	headless   bool
	debug      bool
}

// parseFlags reads args into a Config seeded from defaults or -config.
func parseFlags(args []string, stderr io.Writer) (Config, options, error) {
	var o options
	def := DefaultConfig()
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.genConfig, "gen-config", "", "write the default config to `path` and exit")
	fs.BoolVar(&o.headless, "headless", false, "search once and print the map instead of opening the UI")
	fs.BoolVar(&o.debug, "debug", false, "log to "+logDir+"/"+logFileName)

	width := fs.Int("width", def.Width, "map width")
	height := fs.Int("height", def.Height, "map height")
	obstacles := fs.Int("obstacles", def.Obstacles, "random obstacle placements")
	seed := fs.Int64("seed", def.Seed, "map and engine seed")
	engine := fs.String("engine", def.Engine, "dijkstra, astar, jps or wallfollow")
	diagonal := fs.Bool("diagonal", def.Diagonal, "allow diagonal moves")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on `addr`")
	if err := fs.Parse(args); err != nil {
		return Config{}, o, err
	}

	cfg := def
	if o.configPath != "" {
		loaded, err := LoadConfig(o.configPath)
		if err != nil {
			return Config{}, o, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "obstacles":
			cfg.Obstacles = *obstacles
		case "seed":
			cfg.Seed = *seed
		case "engine":
			cfg.Engine = *engine
		case "diagonal":
			cfg.Diagonal = *diagonal
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	// without a config file the goal tracks the far corner of a resized map
	if o.configPath == "" {
		cfg.Goal = Cell{X: cfg.Width - 1, Y: cfg.Height - 1}
	}

	return cfg, o, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if o.genConfig != "" {
		if err := WriteConfig(o.genConfig, cfg); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "wrote", o.genConfig)
		return nil
	}

	logFile := setupLogging(o.debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// spans go to the log file under -debug and to the global no-op provider otherwise
	var tp trace.TracerProvider
	if logFile != nil {
		provider, stop, err := setupTracing(logFile)
		if err != nil {
			return err
		}
		defer stop()
		tp = provider
	}
	rec := metrics.Fanout{metrics.NewTracer(tp)}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		prom, err := metrics.New(reg)
		if err != nil {
			return err
		}
		rec = append(rec, prom)

		stop := serveMetrics(cfg.MetricsAddr, reg)
		defer stop()
	}

	if o.headless {
		return runHeadless(cfg, rec, stdout)
	}

	return runInteractive(cfg, rec)
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics on http://%s/metrics", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// runHeadless generates the configured map, searches start to goal once and
// prints the rendered map followed by a summary line.
// Endpoints that landed on obstacles are cleared first.
func runHeadless(cfg Config, rec search.Recorder, stdout io.Writer) error {
	kind, err := cfg.EngineKind()
	if err != nil {
		return err
	}
	opts := []search.Option{search.WithSeed(cfg.Seed)}
	if cfg.Diagonal {
		opts = append(opts, search.WithMovement(search.CanDiagonal))
	}
	if rec != nil {
		opts = append(opts, search.WithRecorder(rec))
	}
	m, err := gridpath.New(kind, opts...)
	if err != nil {
		return err
	}
	if err := m.InitMap(cfg.Width, cfg.Height, cfg.Obstacles); err != nil {
		return err
	}
	for _, c := range []Cell{cfg.Start, cfg.Goal} {
		if err := m.SetObstacle(c.X, c.Y, false); err != nil {
			return err
		}
	}

	res, err := m.FindPath(cfg.Start.X, cfg.Start.Y, cfg.Goal.X, cfg.Goal.Y)
	start := grid.Point{X: cfg.Start.X, Y: cfg.Start.Y}
	goal := grid.Point{X: cfg.Goal.X, Y: cfg.Goal.Y}
	fmt.Fprint(stdout, renderASCII(frame{
		view:   m.NodesMap(),
		closed: m.ClosedList(),
		path:   res.Path,
		start:  &start,
		goal:   &goal,
	}))
	mv := search.OnlyStraight
	if cfg.Diagonal {
		mv = search.CanDiagonal
	}
	fmt.Fprintln(stdout, summary(m.Name(), mv, res, err))

	return err
}

func runInteractive(cfg Config, rec search.Recorder) error {
	v, err := NewVisualizer(cfg, rec)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	v.run(screen)

	return nil
}
