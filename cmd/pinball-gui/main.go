package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/pinball/audio"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/gui"
)

const windowScale = 3

var (
	configFlag  = flag.String("config", "", "TOML config file overlaid on the variant preset")
	variantFlag = flag.String("variant", "", "Table variant (default from config, else classic)")
	seedFlag    = flag.Uint64("seed", 0, "Spawn randomizer seed, 0 uses the clock")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	debugFlag   = flag.Bool("debug", false, "Log to stderr")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *debugFlag {
		log.SetOutput(os.Stderr)
	}

	if err := run(); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "pinball-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := engine.LoadConfig(*configFlag, *variantFlag)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sim, err := engine.NewSimulation(cfg, engine.NewRandomizer(seed))
	if err != nil {
		return err
	}

	keys, err := gui.NewKeyboardSource(cfg.Input)
	if err != nil {
		return err
	}
	loop := engine.NewLoop(sim, keys, nil, cfg.Loop.TickInterval())

	sound := audio.NewSoundManager(audio.ConfigFrom(cfg.Audio))
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	loop.RegisterHandler(sound)

	game := gui.NewGame(loop)
	game.OnMute = func() { log.Printf("muted=%v", sound.ToggleMute()) }

	ebiten.SetWindowSize(int(cfg.Arena.Width)*windowScale, int(cfg.Arena.Height)*windowScale)
	ebiten.SetWindowTitle(fmt.Sprintf("Pinball (%s)", cfg.Variant))
	ebiten.SetTPS(cfg.Loop.TPS)

	return ebiten.RunGame(game)
}
