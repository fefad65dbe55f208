package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer all entities and renderers live on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	Gravity      float64

	// Crouch mechanics
	CrouchWalkSpeed float64 // Max speed while crouch-walking

	// Lives
	StartingLives int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Global physics
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64

	// Wall sliding
	WallSlideSpeed float64

	// Collision
	VerticalSpeedClamp float64 // Maximum vertical speed magnitude
}

// ControllerConfig contains raycast collision controller tuning
type ControllerConfig struct {
	SkinWidth          float64
	HorizontalRayCount int
	VerticalRayCount   int
	MaxClimbAngle      float64 // degrees
	MaxDescendAngle    float64 // degrees
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DeathIntensity float64 // pixels
	DeathDuration  int     // frames
	LandIntensity  float64 // pixels, heavy landings only
	LandDuration   int     // frames
}

// DeathZoneConfig contains dead zone / respawn configuration
type DeathZoneConfig struct {
	RespawnDelayFrames int // frames before respawn at last checkpoint
}

// UIConfig contains HUD and debug overlay configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	HUDMargin       float64

	// Debug overlay colors
	DebugBodyColor    color.RGBA
	DebugRayColor     color.RGBA
	DebugSurfaceColor color.RGBA
	DebugOneWayColor  color.RGBA
	DebugTriggerColor color.RGBA

	HUDFontSize   float64
	DebugFontSize float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// PlatformConfig contains floating platform defaults
type PlatformConfig struct {
	DefaultTravel float64 // pixels
	DefaultPeriod float64 // seconds for one leg
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	DrawRays  bool // Draw controller probe rays
	DrawBoxes bool // Draw collision surfaces and trigger volumes
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Controller ControllerConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var DeathZone DeathZoneConfig
var UI UIConfig
var Menu MenuConfig
var Pause PauseConfig
var Platform PlatformConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
		MaxRiseSpeed: -10.0,

		WallSlideSpeed: 1.0,

		VerticalSpeedClamp: 10.0,
	}

	// Controller Config
	Controller = ControllerConfig{
		SkinWidth:          1.0,
		HorizontalRayCount: 4,
		VerticalRayCount:   4,
		MaxClimbAngle:      55.0,
		MaxDescendAngle:    55.0,
	}

	// Player Config
	Player = PlayerConfig{
		JumpSpeed:    15.0,
		Acceleration: 0.75,
		MaxSpeed:     6.0,
		Friction:     0.5,
		Gravity:      0.75,

		CrouchWalkSpeed: 1.5, // Slow movement while crouched

		StartingLives: 3,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      40.0,
		LookAheadSmoothing:      0.04,
		LookAheadSpeedThreshold: 0.5,
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		DeathIntensity: 6.0,
		DeathDuration:  30,
		LandIntensity:  2.0,
		LandDuration:   8,
	}

	// Death Zone Config
	DeathZone = DeathZoneConfig{
		RespawnDelayFrames: 45, // ~0.75s at 60fps
	}

	// UI Config
	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 24, G: 26, B: 34, A: 255},
		HUDTextColor:    White,
		HUDMargin:       8.0,

		DebugBodyColor:    Green,
		DebugRayColor:     Red,
		DebugSurfaceColor: color.RGBA{R: 90, G: 90, B: 110, A: 255},
		DebugOneWayColor:  Blue,
		DebugTriggerColor: Magenta,

		HUDFontSize:   14.0,
		DebugFontSize: 10.0,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 24, B: 38, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "ASCENT",
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    24,
		MenuItemGap:       8,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
	}

	// Platform Config
	Platform = PlatformConfig{
		DefaultTravel: 128.0,
		DefaultPeriod: 2.0,
	}

	Debug = DebugConfig{}
}
