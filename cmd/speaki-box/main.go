package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/speaki-box/audio"
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/render"
	"github.com/lixenwraith/speaki-box/sim"
	"github.com/lixenwraith/speaki-box/sprite"
	"github.com/lixenwraith/speaki-box/status"
	"github.com/lixenwraith/speaki-box/vmath"
)

var (
	configFlag   = flag.String("config", "", "Config file (default ./"+config.DefaultPath+" when present)")
	manifestFlag = flag.String("manifest", "", "Sprite and voice manifest (default embedded)")
	countFlag    = flag.Int("count", -1, "Initial speaki count, overrides config")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	debugFlag    = flag.Bool("debug", false, "Write logs to the configured file")
	dumpFlag     = flag.Bool("dump-config", false, "Print the effective config and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *countFlag >= 0 {
		cfg.Game.Count = *countFlag
	}
	if *dumpFlag {
		if err := config.Encode(cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Encode config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := newLogger(cfg.Logging, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	bank, err := sprite.LoadManifestAuto(*manifestFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Manifest: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crash", zap.Any("panic", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPEAKI-BOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer(cfg, bank.Voices, logger)
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	} else {
		defer player.Close()
	}

	var rng vmath.Source = vmath.NewTimeRand()
	if *seedFlag != 0 {
		rng = vmath.NewFastRand(*seedFlag)
	}

	s := sim.New(cfg, bank.Graph,
		sim.WithRand(rng),
		sim.WithLogger(logger),
		sim.WithPlayer(player),
	)
	renderer := render.NewRenderer(screen)
	s.Router().Register(renderer)
	s.Resize(renderer.Viewport().Extent())
	collector := render.NewCollector(renderer.Viewport())

	s.Seed(cfg.Game.Count)
	logger.Info("started",
		zap.Int("count", cfg.Game.Count),
		zap.Int("states", bank.Graph.Len()),
		zap.Int("voices", len(bank.Voices)),
	)

	run(screen, s, renderer, collector, player, logger)
	logger.Info("stopped", zap.Int("alive", s.World().Count()))
}

// run owns the simulation goroutine until the user quits
func run(screen tcell.Screen, s *sim.Simulation, renderer *render.Renderer, collector *render.Collector, player *audio.Player, logger *zap.Logger) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	cfg := s.Config()
	tickTime := s.Status().Gauge(status.KeyTickMicros)
	last := time.Now()
	paused := false

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					paused = !paused
					player.SetMuted(paused)
					logger.Debug("pause", zap.Bool("paused", paused))
				case ev.Key() == tcell.KeyRune && ev.Rune() == '+':
					s.Seed(1)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
					cfg.Audio.Enabled = !cfg.Audio.Enabled
					logger.Debug("sound", zap.Bool("enabled", cfg.Audio.Enabled))
				case ev.Key() == tcell.KeyLeft:
					collector.NudgeWindow(-1, 0)
				case ev.Key() == tcell.KeyRight:
					collector.NudgeWindow(1, 0)
				case ev.Key() == tcell.KeyUp:
					collector.NudgeWindow(0, -1)
				case ev.Key() == tcell.KeyDown:
					collector.NudgeWindow(0, 1)
				}
			case *tcell.EventMouse:
				collector.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
				view := renderer.Resize()
				s.Resize(view.Extent())
				collector.SetViewport(view)
			}

		case now := <-ticker.C:
			delta := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			in := collector.Frame(delta)
			if !paused {
				start := time.Now()
				s.Tick(in)
				s.Flush()
				tickTime.Smooth(float64(time.Since(start).Microseconds()), 0.1)
			}
			renderer.Draw(s, paused)
		}
	}
}
