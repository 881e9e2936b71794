package scaffold

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/fabricinit/cli/internal/project"
	"github.com/fabricinit/cli/internal/templates"
)

func defaultSteps() []step {
	return []step{
		{name: "creating directory structure", run: createSkeleton},
		{name: "writing main class", run: writeMainClass},
		{name: "writing fabric.mod.json", run: writeModManifest},
		{name: "writing gradle files", run: writeGradleFiles},
		{name: "copying icon", run: copyIcon},
		{name: "copying common files", run: copyCommonFiles},
		{name: "initializing git repository", run: initRepository},
	}
}

// sourceDirs are created for every project.
var sourceDirs = []string{
	"src/main/java",
	"src/main/resources",
	"src/test/java",
	"src/test/resources",
}

func createSkeleton(_ context.Context, j *job) error {
	for _, d := range sourceDirs {
		if err := j.mkdir(d); err != nil {
			return err
		}
	}
	return j.mkdir(path.Join("src/main/java", j.answers.PackagePath()))
}

func writeMainClass(_ context.Context, j *job) error {
	a := j.answers
	rel := path.Join("src/main/java", a.PackagePath(), a.ModName()+".java")

	return j.render(templates.MainClass, rel, templates.Substitutions{
		templates.Var("PACKAGE"):    a.MavenGroup,
		templates.Var("CLASS_NAME"): a.ModName(),
		templates.Var("MOD_ID"):     a.ModID(),
	})
}

func writeModManifest(_ context.Context, j *job) error {
	a := j.answers

	return j.render(templates.ModManifest, "src/main/resources/fabric.mod.json", templates.Substitutions{
		templates.Var("MAIN_CLASS"):        a.ModName(),
		templates.Var("MOD_ID"):            a.ModID(),
		templates.Var("PACKAGE"):           a.MavenGroup,
		templates.Var("VERSION"):           jsonText(a.ModVersion),
		templates.Var("MOD_NAME"):          a.ModName(),
		templates.Var("DESCRIPTION"):       jsonText(a.Description),
		templates.Var("AUTHOR"):            jsonText(a.Author),
		templates.Var("LICENSE"):           jsonText(a.License),
		templates.Var("MINECRAFT_VERSION"): a.MinecraftVersion,
		templates.Var("LOADER_VERSION"):    a.LoaderVersion,
		templates.Var("JAVA_VERSION"):      j.javaVersion,
		templates.Var("ENVIRONMENT"):       a.EnvironmentOrDefault().String(),
	})
}

func writeGradleFiles(_ context.Context, j *job) error {
	a := j.answers
	dsl := a.DSL
	if dsl == "" {
		dsl = project.DSLGroovy
	}

	err := j.render(templates.BuildScript(dsl.String(), dsl.BuildFile()), dsl.BuildFile(), templates.Substitutions{
		templates.Prop("java_version"): j.javaVersion,
	})
	if err != nil {
		return err
	}

	err = j.render(templates.GradleProps, "gradle.properties", templates.Substitutions{
		templates.Prop("base_name"):             strings.ToLower(a.ModName()),
		templates.Prop("maven_group"):           a.MavenGroup,
		templates.Prop("mod_name"):              a.ModName(),
		templates.Prop("mod_version"):           a.ModVersion,
		templates.Prop("minecraft_version"):     a.MinecraftVersion,
		templates.Prop("yarn_mappings"):         a.YarnVersion,
		templates.Prop("fabric_api_version"):    a.FabricAPIVersion,
		templates.Prop("fabric_loader_version"): a.LoaderVersion,
	})
	if err != nil {
		return err
	}

	wrapper := []staticFile{
		{asset: templates.WrapperProps, rel: "gradle/wrapper/gradle-wrapper.properties", perm: fileMode},
		{asset: templates.GradlewUnix, rel: "gradlew", perm: execMode},
		{asset: templates.GradlewWindows, rel: "gradlew.bat", perm: fileMode},
	}
	// The wrapper jar is optional; gradlew explains how to fetch it.
	if j.m.bundle.Has(templates.WrapperJar) {
		wrapper = append(wrapper, staticFile{asset: templates.WrapperJar, rel: "gradle/wrapper/gradle-wrapper.jar", perm: fileMode})
	}

	for _, w := range wrapper {
		if err := j.copy(w.asset, w.rel, w.perm); err != nil {
			return err
		}
	}

	return j.copy(templates.BuildScript(dsl.String(), dsl.SettingsFile()), dsl.SettingsFile(), fileMode)
}

func copyIcon(_ context.Context, j *job) error {
	return j.copy(templates.Icon, path.Join("src/main/resources/assets", j.answers.ModID(), "icon.png"), fileMode)
}

func copyCommonFiles(_ context.Context, j *job) error {
	if err := j.copy(templates.GitIgnore, ".gitignore", fileMode); err != nil {
		return err
	}
	return j.copy(templates.GitAttributes, ".gitattributes", fileMode)
}

func initRepository(ctx context.Context, j *job) error {
	if !j.answers.InitGit {
		return nil
	}
	if err := j.m.repo.Init(ctx, j.root); err != nil {
		return err
	}
	j.git = true
	return nil
}

const (
	fileMode os.FileMode = 0o644
	execMode os.FileMode = 0o755
)

type staticFile struct {
	asset string
	rel   string
	perm  os.FileMode
}

// jsonText escapes s for use inside a JSON string literal.
func jsonText(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}
