// Command riftbrawl runs headless bot matches and logs their results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/riftbrawl/assets"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/content"
	"github.com/automoto/riftbrawl/match"
	"github.com/automoto/riftbrawl/shared/leveldata"
	"github.com/automoto/riftbrawl/shared/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type options struct {
	level      string
	p1, p2     string
	difficulty int
	matches    int
	parallel   int
	seed       int64
	maxTicks   int
	tickRate   int
	realtime   bool
	contentDir string
	spritesDir string
	watch      bool
}

func main() {
	var o options
	flag.StringVar(&o.level, "level", "arena", "Arena to fight in")
	flag.StringVar(&o.p1, "p1", "knight", "Character for player 1")
	flag.StringVar(&o.p2, "p2", "rogue", "Character for player 2")
	flag.IntVar(&o.difficulty, "difficulty", int(config.BotDifficultyNormal), "Bot difficulty (0 easy, 1 normal, 2 hard)")
	flag.IntVar(&o.matches, "matches", 1, "Number of matches to run")
	flag.IntVar(&o.parallel, "parallel", 1, "Matches run at once")
	flag.Int64Var(&o.seed, "seed", 42, "Base random seed")
	flag.IntVar(&o.maxTicks, "maxticks", config.Match.MaxTicks, "Tick limit per match (0 = unlimited)")
	flag.IntVar(&o.tickRate, "tickrate", config.Loop.TickRate, "Simulation ticks per second")
	flag.BoolVar(&o.realtime, "realtime", false, "Pace ticks in real time")
	flag.StringVar(&o.contentDir, "content", "", "Directory of character YAML files (default: embedded)")
	flag.StringVar(&o.spritesDir, "sprites", "", "Directory of <character>/<STATE>.png sheets")
	flag.BoolVar(&o.watch, "watch", false, "Reload characters from -content when they change")
	logLevel := flag.String("log-level", "info", "Log level")
	logFormat := flag.String("log-format", "console", "Log format (console or json)")
	flag.Parse()

	logger, err := logging.New(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "riftbrawl: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("riftbrawl failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, logger *zap.Logger) error {
	levels, _, err := assets.LoadLevels()
	if err != nil {
		return err
	}
	level, ok := levels[o.level]
	if !ok {
		return fmt.Errorf("unknown level %q", o.level)
	}

	var source content.FrameSource = content.PlaceholderSource{}
	if o.spritesDir != "" {
		source = content.SheetSource{FS: os.DirFS(o.spritesDir), Fallback: source}
	}
	registry := content.NewRegistry(source, logger)
	if err := loadCharacters(registry, o.contentDir); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if o.watch {
		if o.contentDir == "" {
			return errors.New("-watch needs -content")
		}
		w, err := content.NewWatcher(o.contentDir)
		if err != nil {
			return err
		}
		defer w.Close()
		go reload(ctx, w, registry, o.contentDir, logger)
	}

	g.SetLimit(max(1, o.parallel))
	for i := range o.matches {
		g.Go(func() error {
			return runMatch(ctx, o, i, level, registry, logger)
		})
	}
	return g.Wait()
}

func loadCharacters(registry *content.Registry, dir string) error {
	if dir == "" {
		return assets.LoadCharacters(registry)
	}
	return registry.Load(os.DirFS(dir), ".")
}

// reload keeps the registry in sync with dir. A bad edit is logged and the
// previous characters stay in use.
func reload(ctx context.Context, w *content.Watcher, registry *content.Registry, dir string, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			if err := loadCharacters(registry, dir); err != nil {
				logger.Warn("character reload failed", zap.String("file", name), zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

func runMatch(ctx context.Context, o options, index int, level *leveldata.LevelDef, registry *content.Registry, logger *zap.Logger) error {
	p1, err := registry.Get(o.p1)
	if err != nil {
		return err
	}
	p2, err := registry.Get(o.p2)
	if err != nil {
		return err
	}

	seed := o.seed + int64(index)
	log := logger.With(zap.Int("match", index))
	m, err := match.New(level, [2]match.Contender{
		{Name: "p1:" + p1.Name(), Character: p1},
		{Name: "p2:" + p2.Name(), Character: p2},
	}, match.WithLogger(log), match.WithSeed(seed), match.WithMaxTicks(o.maxTicks))
	if err != nil {
		return err
	}

	difficulty := config.BotDifficulty(o.difficulty)
	loop := match.NewGameLoop(m, [2]match.InputSource{
		match.NewBot(difficulty, seed*2),
		match.NewBot(difficulty, seed*2+1),
	}, o.tickRate, o.realtime)

	r, err := loop.Run(ctx)
	if err != nil {
		return err
	}

	winner := r.Winner
	if winner == "" {
		winner = "draw"
	}
	log.Info("match result",
		zap.String("level", r.Level),
		zap.String("winner", winner),
		zap.Int("ticks", r.Ticks),
		zap.Ints("lives", r.Lives[:]),
		zap.Ints("kos", r.KOs[:]),
		zap.Bool("timed_out", r.TimedOut))
	return nil
}
