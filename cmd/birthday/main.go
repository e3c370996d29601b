package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/lixenwraith/birthday-surprise/audio"
	"github.com/lixenwraith/birthday-surprise/config"
	"github.com/lixenwraith/birthday-surprise/engine"
	"github.com/lixenwraith/birthday-surprise/input"
	"github.com/lixenwraith/birthday-surprise/render"
	"github.com/lixenwraith/birthday-surprise/render/renderers"
	"github.com/lixenwraith/birthday-surprise/scene"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log directory")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))

	err = run(cfg, logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *debugFlag {
		cfg.Logger.Debug = true
		cfg.Logger.Level = "debug"
	}
	if *colorFlag != "" {
		cfg.Render.Color = *colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

// crash restores the terminal and exits with the panic and stack on stderr
func crash(screen tcell.Screen, logger *zap.Logger, where string, r any) {
	screen.Fini()
	logger.Error("crashed", zap.String("where", where), zap.Any("panic", r))
	_ = logger.Sync()
	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func run(cfg *config.Config, logger *zap.Logger) error {
	applyColorMode(cfg.Render.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: ensure the terminal is reset even if the frame loop crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, logger, "BIRTHDAY", r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller := scene.NewController(engine.NewTimeProvider(), logger)
	go func() {
		if err := controller.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("controller stopped", zap.Error(err))
		}
	}()
	defer controller.Stop()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.Volume
	sound := audio.NewSoundManager(audioCfg, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	updates, unsubscribe := controller.Subscribe()
	defer unsubscribe()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, logger, "AUDIO", r)
			}
		}()
		prev := controller.Snapshot()
		for snap := range updates {
			sound.OnSnapshot(prev, snap)
			prev = snap
		}
	}()

	layout := render.NewLayout()
	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator, layout, time.Now().UnixNano())

	handler := input.NewHandler(controller, layout, sound, orchestrator.Resize, logger)

	events := make(chan tcell.Event, 64)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, logger, "EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("greeting started",
		zap.String("recipient", cfg.Recipient.Name),
		zap.Int("fps", cfg.Render.FPS),
		zap.Bool("audio", sound.IsInitialized()))

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("signal received, exiting")
			return nil

		case ev := <-events:
			if !handler.HandleEvent(ev) {
				return nil
			}

		case now := <-frameTicker.C:
			orchestrator.RenderFrame(render.RenderContext{
				Now:       now,
				Snapshot:  controller.Snapshot(),
				Muted:     sound.IsMuted(),
				Recipient: cfg.Recipient.Name,
				Age:       cfg.Recipient.Age,
			})
		}
	}
}
