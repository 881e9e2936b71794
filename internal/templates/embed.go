// Package templates provides the embedded Fabric project asset bundle and
// literal placeholder rendering.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var assetsFS embed.FS

// Asset paths inside the bundle.
const (
	ModManifest     = "fabric/fabric.mod.json"
	MainClass       = "fabric/java/MainClass.java.template"
	GradleProps     = "gradle/gradle.properties"
	WrapperProps    = "gradle/wrapper/gradle-wrapper.properties"
	WrapperJar      = "gradle/wrapper/gradle-wrapper.jar"
	GradlewUnix     = "gradle/gradlew"
	GradlewWindows  = "gradle/gradlew.bat"
	Icon            = "common/icon.png"
	GitIgnore       = "common/.gitignore.template"
	GitAttributes   = "common/.gitattributes.template"
	dslDirectoryFmt = "gradle/dsl/%s/%s"
)

// Default returns the bundle backed by the embedded assets.
func Default() *Bundle {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewBundle(sub)
}
