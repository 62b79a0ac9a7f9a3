package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/fonts"
	"github.com/automoto/asteroids/logging"
	"github.com/automoto/asteroids/scenes"
	"github.com/automoto/asteroids/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const appName = "asteroids"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedStats) *Game {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(rng, saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Arena.ScreenWidth, config.Arena.ScreenHeight)
	return config.Arena.ScreenWidth, config.Arena.ScreenHeight
}

type options struct {
	debug bool
}

var errUnexpectedArgs = errors.New("unexpected arguments")

// parseArgs accepts only -d/--debug. flag handles both the single and
// double dash spellings.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.debug, "d", false, "enable debug overlay and logging")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug overlay and logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-d|--debug]\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "%s: unexpected argument %q\n", appName, fs.Arg(0))
		fs.Usage()
		return opts, errUnexpectedArgs
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	logger, err := logging.Init(opts.debug)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	config.Debug.Overlay = opts.debug

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.Arena.ScreenWidth, config.Arena.ScreenHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Persistence is optional; the best score just won't survive a restart
	if err := systems.InitPersistence(appName); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	saved, err := systems.LoadStats()
	if err != nil {
		logger.Warn("could not load stats", zap.Error(err))
	}

	logger.Debug("starting", zap.Bool("debug", opts.debug))
	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
