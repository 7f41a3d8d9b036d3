package match

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/riftbrawl/components"
	"go.uber.org/zap"
)

// GameLoop drives a Match at a fixed tick rate. In realtime mode ticks are
// paced by a ticker; otherwise they run back to back.
type GameLoop struct {
	match    *Match
	sources  [2]InputSource
	tickRate int
	realtime bool
	logger   *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(m *Match, sources [2]InputSource, tickRate int, realtime bool) *GameLoop {
	return &GameLoop{
		match:    m,
		sources:  sources,
		tickRate: tickRate,
		realtime: realtime,
		logger:   m.logger,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the match finishes, Stop is called or ctx is done. The
// result is returned in every case; the error is ctx's when it was canceled.
func (g *GameLoop) Run(ctx context.Context) (Result, error) {
	g.logger.Debug("game loop started",
		zap.Int("tick_rate", g.tickRate),
		zap.Bool("realtime", g.realtime))

	var ticks <-chan time.Time
	if g.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	for !g.match.Finished() {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return g.match.Result(), ctx.Err()
			case <-g.stopChan:
				g.logger.Debug("game loop stopped")
				return g.match.Result(), nil
			case <-ticks:
			}
		} else {
			select {
			case <-ctx.Done():
				return g.match.Result(), ctx.Err()
			case <-g.stopChan:
				g.logger.Debug("game loop stopped")
				return g.match.Result(), nil
			default:
			}
		}
		g.tick()
	}
	return g.match.Result(), nil
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	var inputs [2]components.Inputs
	for i, src := range g.sources {
		inputs[i] = src.Inputs(g.match, i)
	}
	g.match.Step(1/float64(g.tickRate), inputs)
}
