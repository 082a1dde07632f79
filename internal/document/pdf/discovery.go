// Package pdf contains the renderer adapters: headless-chrome printing,
// binary discovery, the raster-assembly fallback and the bounded pool.
package pdf

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/document/domain"
)

// rendererCandidates maps an OS family to an ordered list of well-known
// browser install paths. First existing path wins.
var rendererCandidates = map[string][]string{
	"windows": {
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
		`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
	},
	"darwin": {
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
	},
	"linux": {
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	},
}

// Discovery resolves the renderer binary for the current environment.
// Order: bundled binary (mandatory in serverless), CHROME_BIN override,
// then the per-OS candidate table.
type Discovery struct {
	binPath    string
	serverless bool
	goos       string

	// stat is swappable in tests.
	stat func(string) (fs.FileInfo, error)
	env  func(string) string
}

func NewDiscovery(cfg config.Config) *Discovery {
	return &Discovery{
		binPath:    cfg.Renderer.BinPath,
		serverless: cfg.IsServerless(),
		goos:       runtime.GOOS,
		stat:       os.Stat,
		env:        os.Getenv,
	}
}

// Resolve returns the first usable renderer binary, or
// ErrRendererUnavailable when none exists.
func (d *Discovery) Resolve() (string, error) {
	if d.binPath != "" {
		if d.exists(d.binPath) {
			return d.binPath, nil
		}
		return "", fmt.Errorf("%w: configured binary %s not found", domain.ErrRendererUnavailable, d.binPath)
	}

	if d.serverless {
		// Serverless hosts have no browser installs to probe; only a
		// bundled binary is usable there.
		return "", fmt.Errorf("%w: no bundled renderer configured", domain.ErrRendererUnavailable)
	}

	if bin := strings.TrimSpace(d.env("CHROME_BIN")); bin != "" && d.exists(bin) {
		return bin, nil
	}

	for _, candidate := range d.candidates() {
		if d.exists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no browser binary on %s", domain.ErrRendererUnavailable, d.goos)
}

func (d *Discovery) candidates() []string {
	if paths, ok := rendererCandidates[d.goos]; ok {
		return paths
	}
	// BSDs and friends share the POSIX layout.
	return rendererCandidates["linux"]
}

func (d *Discovery) exists(path string) bool {
	info, err := d.stat(path)
	return err == nil && !info.IsDir()
}
