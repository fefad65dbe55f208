// Package levels embeds the shipped level maps. Levels are Tiled maps
// with a "collision" tile layer and object groups for spawns, dead
// zones, checkpoints and floating platforms.
package levels

import "embed"

//go:embed *.tmx *.tsx
var FS embed.FS
