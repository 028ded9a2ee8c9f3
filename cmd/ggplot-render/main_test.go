package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRenderMarkup(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "hello.png")
	code, stdout, stderr := runCmd("-markup", "[bold]Hello[/bold]\nworld", "-size", "20", "-o", out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "saved")

	img, err := imaging.Open(out)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Greater(t, b.Dx(), 40)
	assert.Greater(t, b.Dy(), 40, "two lines of text")

	r, g, bl, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl}, "light theme background")
}

func TestRenderWithThemeAndClasses(t *testing.T) {
	dir := t.TempDir()
	theme := filepath.Join(dir, "dark.toml")
	require.NoError(t, os.WriteFile(theme, []byte("base = \"dark\"\nbackground = \"#102030\"\n"), 0o600))
	sheet := filepath.Join(dir, "classes.css")
	require.NoError(t, os.WriteFile(sheet, []byte(".warn { color: red; font-weight: bold }"), 0o600))

	out := filepath.Join(dir, "warn.png")
	code, _, stderr := runCmd("-markup", "[warn]careful[/warn]", "-theme", theme, "-classes", sheet, "-o", out)
	require.Equal(t, 0, code, stderr)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x10, 0x20, 0x30}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestRenderErrors(t *testing.T) {
	code, _, stderr := runCmd()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-markup or -check is required")

	code, _, stderr = runCmd("-markup", "[bold]oops[/italic]", "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "^")

	code, _, stderr = runCmd("-markup", "x", "-theme", "theme.json")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown theme format")

	code, _, _ = runCmd("-markup", "x", "-size", "0")
	assert.Equal(t, 1, code)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.plot")
	require.NoError(t, os.WriteFile(good, []byte("title: \"Sales\"\nsize: 12\n"), 0o600))
	code, stdout, stderr := runCmd("-check", good)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "ok, 2 top-level properties")

	bad := filepath.Join(dir, "bad.plot")
	require.NoError(t, os.WriteFile(bad, []byte("foo: 1\nbar: \"baz\nqux"), 0o600))
	code, _, stderr = runCmd("-check", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bad.plot:2:6: unterminated string")
	assert.Contains(t, stderr, "^^^^")

	code, _, _ = runCmd("-check", filepath.Join(dir, "missing.plot"))
	assert.Equal(t, 1, code)
}
