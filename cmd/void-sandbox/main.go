package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-trader/audio"
	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/gameplay"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/render"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	game, err := gameplay.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	if err := game.Seed(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed sector: %v\n", err)
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
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nVOID-SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	renderer := render.NewRenderer(screen, parameter.CameraScale)

	events := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var controls heldControls
	cues := make([]audio.Cue, 0, 16)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch controls.handleKey(ev) {
				case cmdQuit:
					return
				case cmdGrid:
					renderer.ShowGrid = !renderer.ShowGrid
				case cmdReset:
					if err := game.Reset(); err != nil {
						log.Printf("sandbox: reset: %v", err)
						continue
					}
					if err := game.Seed(); err != nil {
						log.Printf("sandbox: seed: %v", err)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			controls.apply(&game.Pilot.Controls)
			game.Tick(dt)

			cues = audio.FromNotices(cues[:0], game.Notices.All())
			sound.PlayFrame(cues)
			renderer.Draw(game)
		}
	}
}
