package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/oakmund/warpath/internal/game"
	"github.com/oakmund/warpath/pkg/pathing"
)

func main() {
	var mapsDir string
	var engineName string
	flag.StringVar(&mapsDir, "maps", "", "directory with adventure.yaml / battle.yaml, watched for edits")
	flag.StringVar(&engineName, "engine", "dijkstra", "search backend: dijkstra or penalty")
	flag.Parse()

	var engine pathing.Engine = pathing.DijkstraEngine{}
	if engineName == "penalty" {
		engine = pathing.PenaltyEngine{}
	}

	ebiten.SetWindowTitle("Warpath")
	ebiten.SetWindowSize(960, 640)
	if err := ebiten.RunGame(game.New(game.Options{Engine: engine, MapsDir: mapsDir})); err != nil {
		log.Fatal(err)
	}
}
