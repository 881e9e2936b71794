package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

var (
	java21Since = semver.MustParse("1.20.5")
	java17Since = semver.MustParse("1.17.0")
)

// JavaVersion returns the Java release required by a Minecraft version:
// 21 from 1.20.5, 17 from 1.17.0, otherwise 8.
func JavaVersion(minecraftVersion string) (string, error) {
	v, err := semver.StrictNewVersion(minecraftVersion)
	if err != nil {
		return "", fmt.Errorf("cannot derive java version from minecraft version %q: %v: %w", minecraftVersion, err, oerrors.ErrValidation)
	}

	switch {
	case !v.LessThan(java21Since):
		return "21", nil
	case !v.LessThan(java17Since):
		return "17", nil
	default:
		return "8", nil
	}
}
