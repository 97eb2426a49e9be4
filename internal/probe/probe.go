package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/avadakedavra-wp/fazrepo/internal/platform"
)

// supported lists the managers fazrepo knows about, in report order.
var supported = []PackageManager{
	{Name: "npm", DisplayName: "Node Package Manager", Description: "Node.js package manager", Command: "npm"},
	{Name: "yarn", DisplayName: "Yarn Package Manager", Description: "Fast, reliable, and secure dependency management", Command: "yarn"},
	{Name: "pnpm", DisplayName: "Performant npm", Description: "Fast, disk space efficient package manager", Command: "pnpm"},
	{Name: "bun", DisplayName: "Bun Runtime & Package Manager", Description: "Incredibly fast JavaScript runtime and package manager", Command: "bun"},
}

// Names returns the names of all supported managers.
func Names() []string {
	names := make([]string, len(supported))
	for i, pm := range supported {
		names[i] = pm.Name
	}
	return names
}

// Prober runs package-manager checks.
type Prober struct {
	goos     string
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithGOOS overrides the operating system used to spell commands.
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// WithLookPath replaces exec.LookPath for resolving commands.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(p *Prober) { p.lookPath = fn }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) { p.logger = logger }
}

// New creates a Prober for the host platform.
func New(opts ...Option) *Prober {
	p := &Prober{
		goos:     platform.HostOS(),
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.lookPath == nil {
		p.lookPath = exec.LookPath
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Supported returns fresh copies of the supported managers with Command
// spelled for the prober's platform.
func (p *Prober) Supported() []PackageManager {
	out := make([]PackageManager, len(supported))
	for i, pm := range supported {
		pm.Command = platform.PlatformCommand(pm.Command, p.goos)
		out[i] = pm
	}
	return out
}

// Check probes a single manager.
func (p *Prober) Check(ctx context.Context, pm PackageManager) CheckResult {
	for _, candidate := range platform.CommandCandidates(pm.Command, p.goos) {
		path, err := p.lookPath(candidate)
		if err != nil {
			p.logger.Debug("command lookup failed", "manager", pm.Name, "candidate", candidate, "error", err)
			continue
		}
		p.logger.Debug("command resolved", "manager", pm.Name, "path", path)

		pm.Path = path
		pm.Installed = true
		version, err := p.version(ctx, path)
		if err != nil {
			p.logger.Debug("version query failed", "manager", pm.Name, "error", err)
			return failure(pm, err.Error())
		}
		pm.Version = version
		pm.Working = true
		return success(pm)
	}
	return failure(pm, ErrNotFound.Error())
}

// CheckAll probes the supported managers named in selection, or all of
// them when selection is empty. Checks run one after another in supported
// order; a cancelled context fails the remaining checks.
func (p *Prober) CheckAll(ctx context.Context, selection []string) []CheckResult {
	managers := Select(p.Supported(), selection)
	results := make([]CheckResult, 0, len(managers))
	for _, pm := range managers {
		if err := ctx.Err(); err != nil {
			results = append(results, failure(pm, err.Error()))
			continue
		}
		results = append(results, p.Check(ctx, pm))
	}
	return results
}

// version runs "<path> --version". On a zero exit the first non-empty line
// of stdout (then stderr) is the version. On a non-zero exit the first line
// of stderr becomes the error.
func (p *Prober) version(ctx context.Context, path string) (string, error) {
	prog, args := platform.ShellArgs(path, p.goos, "--version")
	cmd := exec.CommandContext(ctx, prog, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if line := firstLine(stderr.String()); line != "" {
				return "", errors.New(line)
			}
		}
		return "", fmt.Errorf("failed to get version: %w", err)
	}

	if v := firstLine(stdout.String()); v != "" {
		return v, nil
	}
	if v := firstLine(stderr.String()); v != "" {
		return v, nil
	}
	return "unknown", nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
