package input

import (
	"context"
	"fmt"

	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/project"
)

// steps is the prompt pipeline in order. Later steps read earlier answers
// from state; the Minecraft version gates the mappings and API lists.
var steps = []step{
	{name: "fetching versions", run: fetchCatalog},
	{name: "project header", run: header(output.SectionProject)},
	{name: "mod name", run: askLocation},
	{name: "maven group", run: askMavenGroup},
	{name: "gradle DSL", run: askDSL},
	{name: "mod environment", run: askEnvironment},
	{name: "dependencies header", run: header(output.SectionDependencies)},
	{name: "minecraft version", run: askMinecraftVersion},
	{name: "yarn mappings", run: askYarnVersion},
	{name: "loader version", run: askLoaderVersion},
	{name: "fabric API version", run: askFabricAPIVersion},
	{name: "details header", run: header(output.SectionMetadata)},
	{name: "mod details", run: askDetails},
	{name: "git repository", run: askGit},
	{name: "ready header", run: header(output.SectionReady)},
}

func fetchCatalog(ctx context.Context, c *Collector, s *state) error {
	return c.fetch(ctx, func(ctx context.Context) error {
		cat, err := c.source.FetchAll(ctx)
		if err != nil {
			return err
		}
		s.catalog = cat
		return nil
	})
}

func header(sec output.Section) func(context.Context, *Collector, *state) error {
	return func(_ context.Context, c *Collector, _ *state) error {
		c.section(sec)
		return nil
	}
}

func askLocation(_ context.Context, c *Collector, s *state) error {
	for {
		raw, err := c.ask(Question{
			Title:   "What's the name of your Fabric mod?",
			Default: c.defaults.ModName,
			Validate: func(v string) error {
				_, err := project.NewLocation(v, c.cwd)
				return err
			},
		})
		if err != nil {
			return err
		}

		loc, err := project.NewLocation(raw, c.cwd)
		if err != nil {
			return err
		}

		if loc.Exists {
			reuse, err := c.prompter.Confirm(
				fmt.Sprintf("'%s' already exists. Do you want to use it anyway?", loc.Path), false)
			if err != nil {
				return err
			}
			if !reuse {
				continue
			}
		}

		s.answers.Location = loc
		return nil
	}
}

func askMavenGroup(_ context.Context, c *Collector, s *state) error {
	group, err := c.ask(Question{
		Title:       "What is your Maven group (e.g: com.example)?",
		Placeholder: "com.example",
		Validate:    project.ValidateMavenGroup,
	})
	if err != nil {
		return err
	}
	s.answers.MavenGroup = group
	return nil
}

func askDSL(_ context.Context, c *Collector, s *state) error {
	choices := make([]Choice, len(project.DSLs))
	for i, d := range project.DSLs {
		choices[i] = Choice{Label: d.String(), Value: d.String()}
	}

	v, err := c.prompter.Select("Select Gradle DSL:", choices, project.DSLGroovy.String())
	if err != nil {
		return err
	}
	dsl, err := project.ParseDSL(v)
	if err != nil {
		return err
	}
	s.answers.DSL = dsl
	return nil
}

func askEnvironment(_ context.Context, c *Collector, s *state) error {
	choices := make([]Choice, len(project.Environments))
	for i, e := range project.Environments {
		choices[i] = Choice{Label: e.Label(), Value: e.String()}
	}

	v, err := c.prompter.Select("Where does your mod run?", choices, project.EnvironmentUniversal.String())
	if err != nil {
		return err
	}
	s.answers.Environment = project.Environment(v)
	return nil
}

func askMinecraftVersion(_ context.Context, c *Collector, s *state) error {
	v, err := c.choose("Minecraft version:", "stable Minecraft versions", "", scaffoldable(s.catalog.StablePlatformVersions()))
	if err != nil {
		return err
	}
	s.answers.MinecraftVersion = v
	return nil
}

// scaffoldable keeps the versions a Java release can be derived from.
func scaffoldable(versions []string) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		if _, err := project.JavaVersion(v); err != nil {
			output.Debug("skipping minecraft version", "version", v, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func askYarnVersion(_ context.Context, c *Collector, s *state) error {
	mc := s.answers.MinecraftVersion
	v, err := c.choose("Yarn mappings version:", "Yarn mappings", mc, s.catalog.CompatibleMappings(mc))
	if err != nil {
		return err
	}
	s.answers.YarnVersion = v
	return nil
}

func askLoaderVersion(_ context.Context, c *Collector, s *state) error {
	v, err := c.choose("Fabric Loader version:", "stable Fabric Loader versions", "", s.catalog.StableLoaderVersions())
	if err != nil {
		return err
	}
	s.answers.LoaderVersion = v
	return nil
}

func askFabricAPIVersion(_ context.Context, c *Collector, s *state) error {
	mc := s.answers.MinecraftVersion
	v, err := c.choose("Fabric API version:", "Fabric API versions", mc, s.catalog.CompatibleAPIVersions(mc))
	if err != nil {
		return err
	}
	s.answers.FabricAPIVersion = v
	return nil
}

func askDetails(_ context.Context, c *Collector, s *state) error {
	var err error

	if s.answers.ModVersion, err = c.ask(Question{
		Title:    "Mod version:",
		Default:  c.defaults.Version,
		Validate: required("mod version"),
	}); err != nil {
		return err
	}

	if s.answers.Description, err = c.ask(Question{
		Title:    "Mod description:",
		Validate: required("description"),
	}); err != nil {
		return err
	}

	if s.answers.Author, err = c.ask(Question{
		Title:    "Mod author:",
		Default:  c.defaults.Author,
		Validate: required("author"),
	}); err != nil {
		return err
	}

	s.answers.License, err = c.ask(Question{
		Title:    "Mod license:",
		Default:  c.defaults.License,
		Validate: required("license"),
	})
	return err
}

func askGit(_ context.Context, c *Collector, s *state) error {
	ok, err := c.prompter.Confirm("Initialize Git repository?", false)
	if err != nil {
		return err
	}
	s.answers.InitGit = ok
	return nil
}
