package scaffold

import (
	"path"
	"strings"
)

var fileDescriptions = map[string]string{
	"build.gradle":              "Gradle build script",
	"build.gradle.kts":          "Gradle build script (Kotlin DSL)",
	"settings.gradle":           "Gradle settings",
	"settings.gradle.kts":       "Gradle settings (Kotlin DSL)",
	"gradle.properties":         "Minecraft, mappings and dependency versions",
	"gradlew":                   "Gradle wrapper (POSIX)",
	"gradlew.bat":               "Gradle wrapper (Windows)",
	"fabric.mod.json":           "Mod metadata",
	"icon.png":                  "Mod icon",
	"gradle-wrapper.properties": "Gradle distribution",
}

// Descriptions maps each created file to a short description for display.
func (r *Result) Descriptions() map[string]string {
	out := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		base := path.Base(f)
		switch {
		case strings.HasSuffix(base, ".java"):
			out[f] = "Mod entry point"
		default:
			out[f] = fileDescriptions[base]
		}
	}
	return out
}
