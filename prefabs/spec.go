package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CombatantFile = "combatant.yaml"
	AIFile        = "ai.yaml"
	ArenaFile     = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CombatantSpec is the tuning shared by both fighters. Zero values fall back
// to the built-in defaults when converted.
type CombatantSpec struct {
	Name       string         `yaml:"name"`
	Body       BodySpec       `yaml:"body"`
	Movement   MovementSpec   `yaml:"movement"`
	Dash       DashSpec       `yaml:"dash"`
	Downstrike DownstrikeSpec `yaml:"downstrike"`
	Sword      SwordSpec      `yaml:"sword"`
	Shield     ShieldSpec     `yaml:"shield"`
	Stamina    StaminaSpec    `yaml:"stamina"`
	Knockback  KnockbackSpec  `yaml:"knockback"`
}

type BodySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MovementSpec struct {
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
}

type DashSpec struct {
	Multiplier   float64 `yaml:"multiplier"`
	Frames       int     `yaml:"frames"`
	WindowFrames int     `yaml:"window_frames"`
	Cost         *int    `yaml:"cost"`
}

type DownstrikeSpec struct {
	Speed  float64 `yaml:"speed"`
	Frames int     `yaml:"frames"`
	Height float64 `yaml:"height"`
}

type SwordSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	OffsetY        float64 `yaml:"offset_y"`
	ActiveFrames   int     `yaml:"active_frames"`
	RecoveryFrames int     `yaml:"recovery_frames"`
}

type ShieldSpec struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DrainFrames int     `yaml:"drain_frames"`
}

// StaminaSpec uses pointers where zero is a legal setting, so an explicit
// zero is kept apart from an absent key.
type StaminaSpec struct {
	Max         *int `yaml:"max"`
	RegenFrames int  `yaml:"regen_frames"`
	JumpCost    *int `yaml:"jump_cost"`
}

type KnockbackSpec struct {
	Speed            float64 `yaml:"speed"`
	Lift             float64 `yaml:"lift"`
	Friction         float64 `yaml:"friction"`
	Frames           int     `yaml:"frames"`
	InvincibleFrames int     `yaml:"invincible_frames"`
}

// AISpec holds the thresholds of the computer opponent. Pointer fields are
// nil when the key is absent.
type AISpec struct {
	Scheme         string  `yaml:"scheme"`
	ReactionFrames *int    `yaml:"reaction_frames"`
	EngageDistance float64 `yaml:"engage_distance"`
	AttackReach    float64 `yaml:"attack_reach"`
	ShieldDistance float64 `yaml:"shield_distance"`
	RetreatLife    *int    `yaml:"retreat_life"`
	RetreatStamina *int    `yaml:"retreat_stamina"`
	JumpOverShield *bool   `yaml:"jump_over_shield"`
}

// ArenaSpec describes the play field and the presentation palette.
type ArenaSpec struct {
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	GroundRatio   float64   `yaml:"ground_ratio"`
	SpawnInset    float64   `yaml:"spawn_inset"`
	EdgeTolerance float64   `yaml:"edge_tolerance"`
	Colors        ColorSpec `yaml:"colors"`
}

type ColorSpec struct {
	Background *YAMLColor `yaml:"background"`
	Ground     *YAMLColor `yaml:"ground"`
	Player1    *YAMLColor `yaml:"player1"`
	Player2    *YAMLColor `yaml:"player2"`
	Sword      *YAMLColor `yaml:"sword"`
	Shield     *YAMLColor `yaml:"shield"`
}

func LoadCombatantSpec() (CombatantSpec, error) {
	return LoadSpec[CombatantSpec](CombatantFile)
}

func LoadAISpec() (AISpec, error) {
	return LoadSpec[AISpec](AIFile)
}

func LoadArenaSpec() (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](ArenaFile)
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed colour, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
