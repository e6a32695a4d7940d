package main

import (
	"errors"
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/rts-cursor/assets"
	"github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "rts-cursor"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func setupLogging(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// loadCursorConfig applies a config file over saved settings over defaults.
func loadCursorConfig(path string) (config.CursorConfig, error) {
	base := config.Cursor
	if saved, err := config.LoadSavedCursor(); err == nil && saved != nil {
		base = *saved
	}
	if path == "" {
		return base, nil
	}
	return config.LoadOver(path, base)
}

func main() {
	configPath := flag.String("config", "", "cursor configuration file (json, yaml or toml)")
	logLevel := flag.String("log-level", config.Debug.LogLevel, "trace, debug, info, warn or error")
	scenePath := flag.String("scene", assets.DefaultScene, "embedded scene to load")
	save := flag.Bool("save", false, "remember the cursor configuration for the next run")
	flag.Parse()

	logger := setupLogging(*logLevel)

	// Initialize persistence and load saved settings
	if err := config.InitPersistence(appName); err != nil {
		logger.Warn().Err(err).Msg("running without saved settings")
	}

	cursorCfg, err := loadCursorConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid cursor configuration")
	}
	if *save {
		if err := config.SaveCursor(cursorCfg); err != nil {
			logger.Warn().Err(err).Msg("could not save cursor configuration")
		}
	}

	scene, err := scenes.NewSelectionScene(cursorCfg, *scenePath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create scene")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
