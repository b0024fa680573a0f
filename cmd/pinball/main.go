package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/audio"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/input"
	"github.com/lixenwraith/pinball/render"
	"github.com/lixenwraith/pinball/trace"
	"golang.org/x/term"
)

const defaultHeadlessTicks = 600

type options struct {
	configPath string
	variant    string
	seed       uint64
	debug      bool
	headless   bool
	ticks      int
	mute       bool
	tracePath  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pinball", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file overlaid on the variant preset")
	fs.StringVar(&opts.variant, "variant", "", fmt.Sprintf("Table variant: %v (default from config, else classic)", engine.Variants))
	fs.Uint64Var(&opts.seed, "seed", 0, "Spawn randomizer seed, 0 uses the clock")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.headless, "headless", false, "Run without a screen and print event counts")
	fs.IntVar(&opts.ticks, "ticks", defaultHeadlessTicks, "Tick count in headless mode")
	fs.BoolVar(&opts.mute, "mute", false, "Disable audio")
	fs.StringVar(&opts.tracePath, "trace", "", "Headless only: write a msgpack record per tick to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.ticks < 0 {
		return options{}, fmt.Errorf("ticks must be non-negative, got %d", opts.ticks)
	}
	return opts, nil
}

// newSimulation resolves config and seed into a ready simulation
func newSimulation(opts options) (*engine.Simulation, engine.Config, error) {
	cfg, err := engine.LoadConfig(opts.configPath, opts.variant)
	if err != nil {
		return nil, engine.Config{}, err
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("variant=%s seed=%d tps=%d", cfg.Variant, seed, cfg.Loop.TPS)

	sim, err := engine.NewSimulation(cfg, engine.NewRandomizer(seed))
	if err != nil {
		return nil, engine.Config{}, err
	}
	return sim, cfg, nil
}

// runHeadless steps the simulation without pacing and writes one line per event kind
// A non-nil traceW receives the per-tick msgpack trace
func runHeadless(sim *engine.Simulation, cfg engine.Config, ticks int, w, traceW io.Writer) error {
	loop := engine.NewLoop(sim, nil, nil, cfg.Loop.TickInterval())
	var rec *trace.Recorder
	if traceW != nil {
		rec = trace.NewRecorder(traceW)
		loop.Renderer = rec
		loop.RegisterHandler(rec)
	}
	counts := loop.RunTicks(ticks)

	kinds := make([]engine.EventKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	fmt.Fprintf(w, "%s: %d ticks\n", cfg.Variant, sim.Tick())
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-8s %d\n", k, counts[k])
		log.Printf("headless %s=%d", k, counts[k])
	}
	b := sim.Ball
	fmt.Fprintf(w, "  ball     (%.2f, %.2f) v=(%.2f, %.2f)\n", b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)

	if rec != nil {
		if err := rec.Err(); err != nil {
			return err
		}
		fmt.Fprintf(w, "  trace    %d records\n", rec.Count())
	}
	return nil
}

func headless(sim *engine.Simulation, cfg engine.Config, opts options) error {
	if opts.tracePath == "" {
		return runHeadless(sim, cfg, opts.ticks, os.Stdout, nil)
	}
	f, err := os.Create(opts.tracePath)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := runHeadless(sim, cfg, opts.ticks, os.Stdout, bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	sim, cfg, err := newSimulation(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pinball: %v\n", err)
		os.Exit(1)
	}

	if opts.headless || opts.tracePath != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := headless(sim, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "pinball: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(sim, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pinball: %v\n", err)
		os.Exit(1)
	}
}

func runTerminal(sim *engine.Simulation, cfg engine.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	screen.EnableFocus()

	// Panic recovery: the deferred Fini below has already restored the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPINBALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	source, err := input.NewTerminalSource(cfg.Input, engine.SystemClock{})
	if err != nil {
		return err
	}
	renderer := render.NewTerminalRenderer(screen)
	loop := engine.NewLoop(sim, source, renderer, cfg.Loop.TickInterval())

	sound := audio.NewSoundManager(audio.ConfigFrom(cfg.Audio))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the table runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	loop.RegisterHandler(sound)

	ticker := time.NewTicker(loop.Interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := handleIntent(source.HandleKey(ev), sim, source, renderer, sound); quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					source.ReleaseAll()
				}
			}

		case <-ticker.C:
			if renderer.Paused {
				renderer.Render(sim.Frame())
				continue
			}
			loop.Tick()
		}
	}
}

// handleIntent applies a system key and reports whether to quit
func handleIntent(intent input.IntentType, sim *engine.Simulation, source *input.TerminalSource, renderer *render.TerminalRenderer, sound *audio.SoundManager) bool {
	switch intent {
	case input.IntentQuit:
		return true
	case input.IntentPause:
		renderer.Paused = !renderer.Paused
		source.ReleaseAll()
		log.Printf("paused=%v at tick %d", renderer.Paused, sim.Tick())
	case input.IntentRespawn:
		sim.Respawn()
	case input.IntentCharge:
		sim.ChargeLauncher()
	case input.IntentMute:
		log.Printf("muted=%v", sound.ToggleMute())
	}
	return false
}
