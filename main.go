package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxshadow/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	sf := common.ScaleFactorFor(w, h)
	// leave room for window decorations
	ebiten.SetWindowSize(int(16*sf*0.8), int(9*sf*0.8))
	ebiten.SetWindowTitle("box shadow")

	game, err := NewGame(*debug, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
