package config

import (
	"image/color"
	"math"
)

type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size  float64 // Side length of the player square
	Dash  DashConfig
	Ghost GhostConfig
}

// DashConfig holds the timing and reach of the point-and-click dash
type DashConfig struct {
	MaxDistance  float64 // Dash length is clamped to this
	Delay        float64 // Seconds between the click and movement
	Duration     float64 // Seconds the dash interpolation takes
	GhostSpacing float64 // Distance travelled between ghost markers
}

// GhostConfig holds the afterimage trail configuration
type GhostConfig struct {
	Capacity   int     // Ring buffer size
	Lifetime   float64 // Seconds until a ghost is fully faded
	AlphaScale float64 // Ghost alpha multiplier at draw time
}

// EnemyTypeConfig describes one enemy preset
type EnemyTypeConfig struct {
	Name           string
	AttackType     AttackType
	AttackDuration float64 // seconds
	MinCooldown    float64 // seconds, initial cooldown lower bound
	MaxCooldown    float64 // seconds, initial cooldown upper bound
	AttackDistance float64 // Circle radius or ray length
	MovementSpeed  float64 // px per second
	AttackRange    float64 // Player must be this close to trigger
	InnerAngle     float64 // degrees, cone inner half-angle
	OuterAngle     float64 // degrees, cone outer half-angle
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Attack behaviour constants
	BaseAngularSpeed      float64 // rad/s, divided by the attack duration
	AngleEpsilon          float64 // rad, "at target" tolerance
	TimeEpsilon           float64 // seconds, absorbs float drift when summing dt
	FiringSpeedMultiplier float64
	FlashInterval         float64 // seconds between outer ray flash toggles
	RecoveryCooldownMin   float64 // seconds, cooldown after an attack ends
	RecoveryCooldownMax   float64
	CrossingSweep         bool // Outer rays charge toward the opposite inner angle

	// Chase behaviour
	HorizontalChaseBias float64 // Horizontal speed multiplier
	ChaseDeadband       float64 // Per-axis distance below which the enemy holds still

	BodyRadius float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DashIntensity float64 // px
	DashDuration  float64 // seconds
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	FadeDuration float64 // seconds
	Title        string
	Hint         string
	TitleSize    float64
	HintSize     float64
}

// HUDConfig contains the always-on text overlay
type HUDConfig struct {
	Hint      string
	HintX     int
	HintY     int
	TextColor color.RGBA
}

// ArenaConfig contains the background and level selection
type ArenaConfig struct {
	Level      string // TMX file name under assets/levels
	Background color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBodies bool  // Draw resolv bodies over the scene
	Seed       int64 // 0 picks a time based seed
}

var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var ScreenShake ScreenShakeConfig
var Pause PauseConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RayWhite   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray       = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Red        = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Blue       = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	HalfShadow = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		Level:      "arena.tmx",
		Background: RayWhite,
	}

	Player = PlayerConfig{
		Size: 20,
		Dash: DashConfig{
			MaxDistance:  250,
			Delay:        0.13,
			Duration:     0.13,
			GhostSpacing: 8,
		},
		Ghost: GhostConfig{
			Capacity:   200,
			Lifetime:   0.35,
			AlphaScale: 0.5,
		},
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Circler": {
				Name:           "Circler",
				AttackType:     AttackCircle,
				AttackDuration: 1.5,
				MinCooldown:    1.0,
				MaxCooldown:    3.0,
				AttackDistance: 60,
				MovementSpeed:  50,
				AttackRange:    250,
				InnerAngle:     15,
				OuterAngle:     45,
			},
			"Lancer": {
				Name:           "Lancer",
				AttackType:     AttackInFront,
				AttackDuration: 5.0,
				MinCooldown:    1.0,
				MaxCooldown:    3.0,
				AttackDistance: 200,
				MovementSpeed:  100,
				AttackRange:    100,
				InnerAngle:     15,
				OuterAngle:     45,
			},
		},
		BaseAngularSpeed:      100 * math.Pi / 180,
		AngleEpsilon:          0.01,
		TimeEpsilon:           1e-9,
		FiringSpeedMultiplier: 1.5,
		FlashInterval:         0.1,
		RecoveryCooldownMin:   2.0,
		RecoveryCooldownMax:   5.0,
		CrossingSweep:         true,
		HorizontalChaseBias:   1.33,
		ChaseDeadband:         1.0,
		BodyRadius:            10,
	}

	ScreenShake = ScreenShakeConfig{
		DashIntensity: 1.0,
		DashDuration:  0.12,
	}

	Pause = PauseConfig{
		OverlayColor: HalfShadow,
		FadeDuration: 0.15,
		Title:        "Paused!",
		Hint:         "SPACE - RESUME   R - RESTART",
		TitleSize:    40,
		HintSize:     16,
	}

	HUD = HUDConfig{
		Hint:      "LMB - DASH",
		HintX:     10,
		HintY:     30,
		TextColor: DarkGray,
	}
}
