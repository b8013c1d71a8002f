package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/boxshadow/component"
	"github.com/milk9111/boxshadow/obj"
	"github.com/milk9111/boxshadow/prefabs"
	"github.com/milk9111/boxshadow/system"
)

type tally struct {
	outcomes map[system.Outcome]int
	hits     int
	blocks   int
	timeouts int
	frames   int
}

func main() {
	matches := flag.Int("n", 100, "number of matches to simulate")
	maxFrames := flag.Int("frames", 60*180, "frame limit per match before it counts as a timeout")
	stamina1 := flag.Int("s1", -1, "player 1 max stamina (-1 keeps the prefab value)")
	stamina2 := flag.Int("s2", -1, "player 2 max stamina (-1 keeps the prefab value)")
	verbose := flag.Bool("v", false, "log every combat event")
	flag.Parse()

	cfg, err := system.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	aiSpec, err := prefabs.LoadAISpec()
	if err != nil {
		log.Fatal(err)
	}
	scheme, aiTuning := obj.AITuningFromSpec(aiSpec)

	world := system.NewWorld(cfg)
	for i := 0; i < 2; i++ {
		ai, err := obj.NewAIController(scheme, aiTuning)
		if err != nil {
			log.Fatal(err)
		}
		if err := world.SetInput(i, ai); err != nil {
			log.Fatal(err)
		}
	}

	t := tally{outcomes: make(map[system.Outcome]int)}
	world.Emitter().Subscribe(func(evt component.CombatEvent) {
		switch evt.Type {
		case component.EventHitLanded:
			t.hits++
		case component.EventShieldBlocked:
			t.blocks++
		}
		if *verbose {
			log.Printf("frame %d: %s attacker=%d target=%d", evt.Frame, evt.Type, evt.AttackerID, evt.TargetID)
		}
	})

	for m := 0; m < *matches; m++ {
		if err := world.Reset(true); err != nil {
			log.Fatal(err)
		}
		for i, s := range []int{*stamina1, *stamina2} {
			if s < 0 {
				continue
			}
			if err := world.SetMaxStamina(i, s); err != nil {
				log.Fatalf("player %d: %v", i+1, err)
			}
		}
		for world.Outcome() == system.Ongoing && world.Frame() < *maxFrames {
			world.Tick()
		}
		t.frames += world.Frame()
		if world.Outcome() == system.Ongoing {
			t.timeouts++
			continue
		}
		t.outcomes[world.Outcome()]++
	}

	fmt.Printf("matches:     %d\n", *matches)
	fmt.Printf("player 1:    %d\n", t.outcomes[system.Player1Win])
	fmt.Printf("player 2:    %d\n", t.outcomes[system.Player2Win])
	fmt.Printf("draws:       %d\n", t.outcomes[system.Draw])
	fmt.Printf("timeouts:    %d\n", t.timeouts)
	fmt.Printf("hits:        %d\n", t.hits)
	fmt.Printf("blocks:      %d\n", t.blocks)
	if *matches > 0 {
		fmt.Printf("avg frames:  %.1f\n", float64(t.frames)/float64(*matches))
	}
}
