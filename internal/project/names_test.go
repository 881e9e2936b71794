package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

func TestSanitizeModName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Mod! 2", "MyMod2"},
		{"MyMod", "MyMod"},
		{"my-cool_mod", "mycoolmod"},
		{"!!!", ""},
		{"", ""},
		{"Café Mod", "CaféMod"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeModName(tt.input))
		})
	}
}

func TestSanitizeModID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Mod! 2", "mymod2"},
		{"MyMod", "mymod"},
		{"snake_Case", "snake_case"},
		{"dash-ed", "dashed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeModID(tt.input))
		})
	}
}

func TestValidateModName(t *testing.T) {
	assert.NoError(t, ValidateModName("MyMod2"))

	for _, name := range []string{"", "Café", "my mod"} {
		err := ValidateModName(name)
		assert.Error(t, err, name)
		assert.True(t, errors.Is(err, oerrors.ErrValidation), name)
	}

	err := ValidateModName(SanitizeModName("Café Mod"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CaféMod")
}

func TestValidateMavenGroup(t *testing.T) {
	tests := []struct {
		group   string
		wantErr string
	}{
		{group: "com.example"},
		{group: "io.github.steve"},
		{group: "example"},
		{group: "", wantErr: "cannot be empty"},
		{group: ".com.example", wantErr: "start or end with a dot"},
		{group: "com.example.", wantErr: "start or end with a dot"},
		{group: "com.ex@mple", wantErr: "alphanumeric characters and dots"},
		{group: "com.exämple", wantErr: "alphanumeric characters and dots"},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			err := ValidateMavenGroup(tt.group)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "com/example", PackagePath("com.example"))
	assert.Equal(t, "example", PackagePath("example"))
}
