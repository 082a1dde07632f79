package pdf

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cides/formadesk/internal/document/domain"
)

type fakeFileInfo struct{ dir bool }

func (f fakeFileInfo) Name() string       { return "chrome" }
func (f fakeFileInfo) Size() int64        { return 1 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o755 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func statOf(existing ...string) func(string) (fs.FileInfo, error) {
	set := map[string]bool{}
	for _, p := range existing {
		set[p] = true
	}
	return func(path string) (fs.FileInfo, error) {
		if set[path] {
			return fakeFileInfo{}, nil
		}
		return nil, errors.New("not found")
	}
}

func noEnv(string) string { return "" }

func TestResolveBundledBinaryWins(t *testing.T) {
	d := &Discovery{
		binPath: "/opt/render/chrome",
		goos:    "linux",
		stat:    statOf("/opt/render/chrome", "/usr/bin/google-chrome"),
		env:     noEnv,
	}

	bin, err := d.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/opt/render/chrome", bin)
}

func TestResolveBundledBinaryMissingFails(t *testing.T) {
	// A configured binary is mandatory: no silent fall-through to probing.
	d := &Discovery{
		binPath: "/opt/render/chrome",
		goos:    "linux",
		stat:    statOf("/usr/bin/google-chrome"),
		env:     noEnv,
	}

	_, err := d.Resolve()
	assert.ErrorIs(t, err, domain.ErrRendererUnavailable)
}

func TestResolveServerlessRequiresBundled(t *testing.T) {
	d := &Discovery{
		serverless: true,
		goos:       "linux",
		stat:       statOf("/usr/bin/google-chrome"),
		env:        func(string) string { return "/usr/bin/google-chrome" },
	}

	_, err := d.Resolve()
	assert.ErrorIs(t, err, domain.ErrRendererUnavailable)
}

func TestResolveEnvOverride(t *testing.T) {
	d := &Discovery{
		goos: "linux",
		stat: statOf("/home/user/chrome", "/usr/bin/google-chrome"),
		env: func(key string) string {
			if key == "CHROME_BIN" {
				return "/home/user/chrome"
			}
			return ""
		},
	}

	bin, err := d.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/chrome", bin)
}

func TestResolveCandidateOrder(t *testing.T) {
	d := &Discovery{
		goos: "linux",
		stat: statOf("/usr/bin/chromium", "/snap/bin/chromium"),
		env:  noEnv,
	}

	bin, err := d.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/chromium", bin)
}

func TestResolveUnknownOSUsesLinuxCandidates(t *testing.T) {
	d := &Discovery{
		goos: "freebsd",
		stat: statOf("/usr/bin/chromium"),
		env:  noEnv,
	}

	bin, err := d.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/chromium", bin)
}

func TestResolveNothingFound(t *testing.T) {
	d := &Discovery{
		goos: "linux",
		stat: statOf(),
		env:  noEnv,
	}

	_, err := d.Resolve()
	assert.ErrorIs(t, err, domain.ErrRendererUnavailable)
}

func TestResolveDirectoryDoesNotCount(t *testing.T) {
	d := &Discovery{
		goos: "linux",
		stat: func(path string) (fs.FileInfo, error) {
			if path == "/usr/bin/google-chrome-stable" {
				return fakeFileInfo{dir: true}, nil
			}
			return nil, errors.New("not found")
		},
		env: noEnv,
	}

	_, err := d.Resolve()
	assert.ErrorIs(t, err, domain.ErrRendererUnavailable)
}
