// Package catalog fetches the Fabric version catalogs and answers
// compatibility queries over them.
package catalog

// VersionEntry is one game or loader version from Fabric meta.
type VersionEntry struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// MappingEntry is one Yarn mappings build from Fabric meta.
type MappingEntry struct {
	GameVersion string `json:"gameVersion"`
	Version     string `json:"version"`
	Stable      bool   `json:"stable"`
}

// APIEntry is one Fabric API release from Modrinth.
type APIEntry struct {
	VersionNumber string   `json:"version_number"`
	GameVersions  []string `json:"game_versions"`
}

// Catalog holds the four version lists fetched for a run. It is read-only.
type Catalog struct {
	Game     []VersionEntry
	Mappings []MappingEntry
	Loader   []VersionEntry
	API      []APIEntry
}

// StablePlatformVersions returns stable game versions in catalog order.
func (c *Catalog) StablePlatformVersions() []string {
	return stable(c.Game)
}

// StableLoaderVersions returns stable loader versions in catalog order.
func (c *Catalog) StableLoaderVersions() []string {
	return stable(c.Loader)
}

// CompatibleMappings returns the mapping versions built for exactly
// platformVersion, newest first.
func (c *Catalog) CompatibleMappings(platformVersion string) []string {
	var out []string
	for _, m := range c.Mappings {
		if m.GameVersion == platformVersion {
			out = append(out, m.Version)
		}
	}
	return SortVersions(out)
}

// CompatibleAPIVersions returns the Fabric API versions that list
// platformVersion among their game versions, newest first.
func (c *Catalog) CompatibleAPIVersions(platformVersion string) []string {
	var out []string
	for _, a := range c.API {
		for _, gv := range a.GameVersions {
			if gv == platformVersion {
				out = append(out, a.VersionNumber)
				break
			}
		}
	}
	return SortVersions(out)
}

func stable(entries []VersionEntry) []string {
	var out []string
	for _, e := range entries {
		if e.Stable {
			out = append(out, e.Version)
		}
	}
	return out
}
