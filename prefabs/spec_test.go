package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	combatant, err := LoadCombatantSpec()
	require.NoError(t, err)
	assert.Equal(t, 50.0, combatant.Body.Width)
	require.NotNil(t, combatant.Stamina.Max)
	assert.Equal(t, 3, *combatant.Stamina.Max)
	assert.Equal(t, 12, combatant.Sword.ActiveFrames)

	ai, err := LoadAISpec()
	require.NoError(t, err)
	assert.Equal(t, "heuristic", ai.Scheme)

	arena, err := LoadArenaSpec()
	require.NoError(t, err)
	assert.Equal(t, 0.78, arena.GroundRatio)
	require.NotNil(t, arena.Colors.Player1)
	assert.Equal(t, color.NRGBA{R: 0x3f, G: 0x7f, B: 0xd9, A: 0xff}, arena.Colors.Player1.Color)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[ArenaSpec]("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load nope.yaml")
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba_no_hash", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#fff"`, nil, true},
		{"not_hex", `c: "#zz0000"`, nil, true},
		{"not_scalar", "c: [1, 2]", nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out.C.Color)
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var unset *YAMLColor
	assert.Equal(t, color.Black, unset.Or(color.Black))
}

func TestName(t *testing.T) {
	assert.Equal(t, "ai.yaml", Name("prefabs/ai.yaml"))
	assert.Equal(t, "ai.yaml", Name("ai.yaml"))
}

func TestOptionalKeysKeepExplicitZero(t *testing.T) {
	var present CombatantSpec
	require.NoError(t, yaml.Unmarshal([]byte("stamina:\n  max: 0\n"), &present))
	require.NotNil(t, present.Stamina.Max)
	assert.Equal(t, 0, *present.Stamina.Max)
	assert.Nil(t, present.Stamina.JumpCost)

	var ai AISpec
	require.NoError(t, yaml.Unmarshal([]byte("reaction_frames: 0\njump_over_shield: false\n"), &ai))
	require.NotNil(t, ai.ReactionFrames)
	assert.Equal(t, 0, *ai.ReactionFrames)
	require.NotNil(t, ai.JumpOverShield)
	assert.False(t, *ai.JumpOverShield)
	assert.Nil(t, ai.RetreatLife)
}
