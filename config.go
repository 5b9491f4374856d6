package pocketui

import (
	"os"
	"strings"
)

// Environment variables consulted at process start:
//
//	UI_DISABLE_ANIMATIONS  apply animated attribute changes immediately
//	UI_ANTIALIAS           enable antialiased rasterization (default on)
//	UI_RT_FPS              overlay a frames-per-second meter on windows
func envString(name, def string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	return strings.ToLower(strings.TrimSpace(v))
}

func envBool(name string, def bool) bool {
	d := "0"
	if def {
		d = "1"
	}
	switch envString(name, d) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

var (
	// disableAnimations short-circuits Animate so every batch applies
	// synchronously. Useful for tests and screenshot tooling.
	disableAnimations = envBool("UI_DISABLE_ANIMATIONS", false)

	// antialias controls rasterizer antialiasing for all surfaces.
	antialias = envBool("UI_ANTIALIAS", true)

	// showFPS overlays a frame-rate meter in the window corner.
	showFPS = envBool("UI_RT_FPS", false)
)
