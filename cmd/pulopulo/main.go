package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/pulopulo/audio"
	"github.com/lixenwraith/pulopulo/config"
	"github.com/lixenwraith/pulopulo/engine"
	"github.com/lixenwraith/pulopulo/game"
	"github.com/lixenwraith/pulopulo/input"
	"github.com/lixenwraith/pulopulo/render"
	"github.com/lixenwraith/pulopulo/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to an HCL config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/pulopulo.log")
	seedFlag   = flag.Int64("seed", 0, "Fixed seed for the color sequence (0: random)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build key bindings: %v\n", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	surface := render.NewTerminalSurface(nil)
	if err := surface.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer surface.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			surface.Fini()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPULOPULO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	state := engine.NewGameState(rand.New(rand.NewSource(seed)))
	state.SetGravityFrames(cfg.GravityFrames)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(game.Options{
		State:        state,
		Surface:      surface,
		Events:       input.NewPoller(surface.Screen()),
		Keys:         keys,
		Sound:        sound,
		FrameTimeout: cfg.FrameTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		return 1
	}
	if err := g.Run(ctx); err != nil {
		log.Printf("game loop: %v", err)
	}
	log.Printf("exit at frame %d, over=%v", state.Frame, state.Over)
	return 0
}
