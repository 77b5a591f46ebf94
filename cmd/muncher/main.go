package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/muncher/audio"
	"github.com/lixenwraith/muncher/engine"
	"github.com/lixenwraith/muncher/input"
	"github.com/lixenwraith/muncher/maze"
	"github.com/lixenwraith/muncher/render"
	"github.com/lixenwraith/muncher/vmath"
)

const frameInterval = 16 * time.Millisecond

func main() {
	debug := flag.Bool("debug", false, "write debug log to muncher.log")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 derives from the clock")
	level := flag.Int("level", 1, "starting level")
	flag.Parse()

	log := setupLogging(*debug)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", *seed).Info("session start")

	game, err := engine.New(maze.DefaultLayout, vmath.NewFastRand(*seed), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "muncher: %v\n", err)
		os.Exit(1)
	}
	game.SetLevel(*level)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "muncher: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "muncher: %v\n", err)
		os.Exit(1)
	}

	sound, err := audio.NewPlayer()
	if err != nil {
		// Non-fatal, game can run without sound
		log.WithError(err).Warn("audio init failed")
	}

	defer func() {
		sound.Close()
		screen.Fini()
		if r := recover(); r != nil {
			// Screen is restored above; re-panic with the terminal sane
			panic(r)
		}
	}()

	run(game, screen, sound, log)
}

func setupLogging(debug bool) *logrus.Logger {
	log := logrus.New()
	if !debug {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile("muncher.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func run(game *engine.Game, screen tcell.Screen, sound *audio.Player, log *logrus.Logger) {
	handler := input.NewHandler()
	renderer := render.New(screen)
	clock := engine.NewPausableClock(engine.NewMonotonicClock())

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	prev := clock.Now()
	for {
		select {
		case ev := <-events:
			switch handler.HandleEvent(ev) {
			case input.ActionQuit:
				log.Info("quit")
				return
			case input.ActionPause:
				if clock.IsPaused() {
					clock.Resume()
				} else {
					clock.Pause()
				}
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-ticker.C:
			now := clock.Now()
			dt := now.Sub(prev).Seconds()
			prev = now

			// A long stall (window drag, suspend) must not slingshot the
			// simulation
			if dt > 0.1 {
				dt = 0.1
			}

			if dt > 0 && !game.Over() {
				tick := game.Advance(dt, handler.State())
				playCues(sound, tick)
				if tick.Died {
					handler.Reset()
				}
			}
			renderer.Draw(game, frameInterval.Seconds(), clock.IsPaused())
		}
	}
}

func playCues(sound *audio.Player, tick engine.TickEvents) {
	switch {
	case tick.Died:
		sound.Death()
	case tick.LevelCleared:
		sound.LevelClear()
	case tick.GhostsEaten > 0:
		sound.GhostEaten()
	case tick.PowerEaten:
		sound.Power()
	case tick.PelletsEaten > 0:
		sound.Pellet()
	}
}
