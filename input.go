package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxshadow/obj"
)

// KeyMap binds the six intent flags to keyboard keys.
type KeyMap struct {
	Left   ebiten.Key
	Right  ebiten.Key
	Jump   ebiten.Key
	Down   ebiten.Key
	Sword  ebiten.Key
	Shield ebiten.Key
}

var (
	player1Keys = KeyMap{
		Left:   ebiten.KeyA,
		Right:  ebiten.KeyD,
		Jump:   ebiten.KeyW,
		Down:   ebiten.KeyS,
		Sword:  ebiten.KeyF,
		Shield: ebiten.KeyG,
	}
	player2Keys = KeyMap{
		Left:   ebiten.KeyArrowLeft,
		Right:  ebiten.KeyArrowRight,
		Jump:   ebiten.KeyArrowUp,
		Down:   ebiten.KeyArrowDown,
		Sword:  ebiten.KeyPeriod,
		Shield: ebiten.KeySlash,
	}
)

// KeyboardInput samples held keys once per tick.
type KeyboardInput struct {
	Keys KeyMap
}

func (k *KeyboardInput) NextIntent(self, opponent obj.CombatantView) (obj.Intent, bool) {
	if k == nil {
		return obj.Intent{}, false
	}
	return obj.Intent{
		Left:   ebiten.IsKeyPressed(k.Keys.Left),
		Right:  ebiten.IsKeyPressed(k.Keys.Right),
		Jump:   ebiten.IsKeyPressed(k.Keys.Jump),
		Down:   ebiten.IsKeyPressed(k.Keys.Down),
		Sword:  ebiten.IsKeyPressed(k.Keys.Sword),
		Shield: ebiten.IsKeyPressed(k.Keys.Shield),
	}, true
}
