package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/campbuidl/content"
)

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeContentFile(t *testing.T, p content.Page) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, content.EncodeYAML(f, p))
	require.NoError(t, f.Close())
	return path
}

func TestValidate_Builtin(t *testing.T) {
	out, err := runCLI(t, "validate", "--log-mode", "quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "4 lessons valid")
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	p := content.Default()
	p.Lessons[0].Theme = "gold"
	p.Lessons[2].Links[0].URL = ""
	path := writeContentFile(t, p)

	_, err := runCLI(t, "validate", "--log-mode", "quiet", "--content", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrContentModel))

	var buf bytes.Buffer
	printErrorTo(&buf, err)
	msg := buf.String()
	assert.Contains(t, msg, "Error: content has 2 violation(s)")
	assert.Contains(t, msg, "[THEME_UNMAPPED]")
	assert.Contains(t, msg, "[LINK_URL_EMPTY]")
}

func TestExport_Markdown(t *testing.T) {
	out := filepath.Join(t.TempDir(), "guide.md")
	stdout, err := runCLI(t, "export", "--log-mode", "quiet", "--format", "md", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Lesson 3: Web3 Wallets")
}

func TestExport_RequiresOut(t *testing.T) {
	_, err := runCLI(t, "export", "--log-mode", "quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-guide")
	out, err := runCLI(t, "init", dir, "--url", "https://guide.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Done!")

	for _, name := range []string{"site.toml", "README.md", ".env.example", "content.yaml", "public/app.css"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	toml, err := os.ReadFile(filepath.Join(dir, "site.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(toml), `name = "My Guide"`)
	assert.Contains(t, string(toml), `url = "https://guide.example.com"`)

	f, err := os.Open(filepath.Join(dir, "content.yaml"))
	require.NoError(t, err)
	defer f.Close()
	p, err := content.DecodeYAML(f)
	require.NoError(t, err)
	assert.Equal(t, "My Guide", p.Brand)
	assert.NoError(t, content.Validate(p))

	_, err = runCLI(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestOutline(t *testing.T) {
	out, err := runCLI(t, "outline", "--width", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Lesson 1: React Fundamentals")
	assert.Contains(t, out, "Lesson 4: Smart Contracts")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "campbuidl dev")
}

func TestLoadSiteConfig_ContentFlagOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`content = "missing.yaml"`), 0o644))
	path := writeContentFile(t, content.Default())

	_, err := runCLI(t, "validate", "--log-mode", "quiet", "--config", cfgPath)
	require.Error(t, err)
	assert.True(t, content.HasCode(err, content.CodeContentNotFound))

	_, err = runCLI(t, "validate", "--log-mode", "quiet", "--config", cfgPath, "--content", path)
	require.NoError(t, err)
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "My Guide", toTitle("my-guide"))
	assert.Equal(t, "Guide", toTitle("guide"))
	assert.Equal(t, "Web3 Camp", toTitle("web3_camp"))
}
