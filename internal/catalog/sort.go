package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortVersions parses each entry as a strict semantic version
// (MAJOR.MINOR.PATCH with optional pre-release and build) and returns the
// parsable ones in descending order. Unparsable entries are dropped.
// Versions with equal precedence are ordered by their build metadata, so
// 1.20.4+build.3 sorts before 1.20.4+build.1.
func SortVersions(versions []string) []string {
	type parsed struct {
		raw string
		v   *semver.Version
	}

	ps := make([]parsed, 0, len(versions))
	for _, raw := range versions {
		v, err := semver.StrictNewVersion(raw)
		if err != nil {
			continue
		}
		ps = append(ps, parsed{raw: raw, v: v})
	}

	sort.SliceStable(ps, func(i, j int) bool {
		if c := ps[i].v.Compare(ps[j].v); c != 0 {
			return c > 0
		}
		return compareBuild(ps[i].v.Metadata(), ps[j].v.Metadata()) > 0
	})

	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.raw
	}
	return out
}

// compareBuild orders build metadata by dot-separated identifiers. Numeric
// identifiers compare numerically and sort below alphanumeric ones; a
// shorter list that is a prefix of a longer one sorts first. Empty
// metadata sorts below any metadata.
func compareBuild(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func compareIdentifier(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}
