package main

import (
	"errors"
	"flag"

	"github.com/automoto/tilejump/assets"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/logger"
	"github.com/automoto/tilejump/scenes"
	"github.com/automoto/tilejump/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	level := flag.String("level", "", "Embedded level name or .tmx path (empty = built-in map)")
	broadphase := flag.Bool("broadphase", cfg.Debug.Broadphase, "Resolve only against tiles near the actor")
	hud := flag.Bool("hud", cfg.Debug.ShowHUD, "Show actor state overlay (toggle with F1)")
	flag.Parse()

	log := logger.New()

	newSim := func() (*sim.Simulation, error) {
		m, tileSize, err := assets.LoadMap(*level, cfg.C.TileSize)
		if err != nil {
			return nil, err
		}
		settings := sim.DefaultSettings()
		settings.TileSize = tileSize
		settings.Broadphase = *broadphase
		return sim.New(settings, m, log)
	}

	s, err := newSim()
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("tilejump")
	ebiten.SetTPS(cfg.C.TickRate)

	log.WithFields(logrus.Fields{"level": *level, "broadphase": *broadphase}).Info("Starting window host")
	game := &Game{scene: scenes.NewPlatformerScene(s, newSim, *hud, log)}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
