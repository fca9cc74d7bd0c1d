package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmdRegistration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "version" {
			found = true
			assert.Equal(t, GroupInternal, cmd.GroupID)
			break
		}
	}
	assert.True(t, found, "version command should be registered")
}

func TestVersionCmdOutput(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, []string{})

	output := buf.String()
	assert.Contains(t, output, "relnotes")
	assert.Contains(t, output, "commit:")
	assert.Contains(t, output, "built:")
	assert.Contains(t, output, "go version: "+runtime.Version())
	assert.Contains(t, output, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestSauceCmdRegistration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "sauce" {
			found = true
			break
		}
	}
	assert.True(t, found, "sauce command should be registered - did someone spill the sauce?")
}

func TestSauceCmdOutput(t *testing.T) {
	var buf bytes.Buffer
	sauceCmd.SetOut(&buf)
	defer sauceCmd.SetOut(nil)

	sauceCmd.Run(sauceCmd, []string{})

	assert.Equal(t, "https://github.com/ariel-frischer/relnotes\n", buf.String(),
		"Wrong sauce! Expected the secret recipe but got something else. "+
			"Someone's been messing with the marinara!")
}

func TestSourceURLConstant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://github.com/ariel-frischer/relnotes", SourceURL,
		"SourceURL has gone stale! The sauce has expired! "+
			"Quick, someone check if the repo moved or if a developer sneezed on the keyboard!")
	assert.Contains(t, SourceURL, "github.com",
		"The sauce isn't from GitHub? What kind of bootleg ketchup is this?!")
	assert.Contains(t, SourceURL, "relnotes",
		"Lost the relnotes! This sauce is missing its main ingredient!")
}

func TestSauceCmdMetadata(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, sauceCmd.Short,
		"The sauce has no label! How will anyone know what's in the bottle?!")
	assert.NotEmpty(t, sauceCmd.Long,
		"No long description? Even hot sauce bottles have more text than this!")
	assert.Contains(t, sauceCmd.Short, "source",
		"Short description doesn't mention 'source' - "+
			"it's called SAUCE for a reason, it reveals the SOURCE!")
}
