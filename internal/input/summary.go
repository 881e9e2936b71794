package input

import (
	"strconv"

	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/project"
)

// SummaryRows lists the answers for display before generation.
func SummaryRows(a project.AnswerSet) [][2]string {
	java, err := project.JavaVersion(a.MinecraftVersion)
	if err != nil {
		java = "?"
	}

	return [][2]string{
		{"Mod", a.ModName() + " (" + a.ModID() + ")"},
		{"Location", a.Location.Path},
		{"Maven group", a.MavenGroup},
		{"Gradle DSL", a.DSL.String()},
		{"Environment", a.EnvironmentOrDefault().String()},
		{"Minecraft", a.MinecraftVersion},
		{"Java", java},
		{"Yarn mappings", a.YarnVersion},
		{"Fabric Loader", a.LoaderVersion},
		{"Fabric API", a.FabricAPIVersion},
		{"Version", a.ModVersion},
		{"Author", a.Author},
		{"License", a.License},
		{"Git repository", strconv.FormatBool(a.InitGit)},
	}
}

// RenderSummary renders the answers as a table.
func RenderSummary(a project.AnswerSet) string {
	return output.RenderKeyValueTable("SETTING", "VALUE", SummaryRows(a))
}
