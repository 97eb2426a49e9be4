package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/avadakedavra-wp/fazrepo/internal/manifest"
	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Generator writes projects from templates. A Generator holds no mutable
// state and may be shared, but concurrent runs must target distinct roots.
type Generator struct {
	source  templates.Source
	baseDir string
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the template source. The default is templates.Builtin.
func WithSource(src templates.Source) Option {
	return func(g *Generator) { g.source = src }
}

// WithBaseDir sets the directory new projects are created in. The default
// is the current working directory.
func WithBaseDir(dir string) Option {
	return func(g *Generator) { g.baseDir = dir }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{source: templates.Builtin{}}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = templates.Builtin{}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Root returns the directory a project named name would be created at.
func (g *Generator) Root(name string) string {
	return filepath.Join(g.baseDir, name)
}

// Preflight runs the checks Generate performs before touching the
// filesystem and returns the template that would be used.
func (g *Generator) Preflight(cfg ProjectConfig) (templates.Template, error) {
	if err := ValidateName(cfg.Name); err != nil {
		return templates.Template{}, err
	}
	tmpl, ok := g.source.Get(cfg.Template)
	if !ok {
		return templates.Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, cfg.Template)
	}
	root := g.Root(cfg.Name)
	if _, err := os.Lstat(root); err == nil {
		return templates.Template{}, fmt.Errorf("%w: %q", ErrProjectExists, root)
	}
	return tmpl, nil
}

// Generate materializes cfg. Validation failures and a pre-existing root
// produce a single-error result without any filesystem writes. After the
// root is created, a failure for one directory or file is recorded and the
// run continues with the next item.
func (g *Generator) Generate(ctx context.Context, cfg ProjectConfig) *Result {
	tmpl, err := g.Preflight(cfg)
	if err != nil {
		g.logger.Debug("project rejected", "name", cfg.Name, "template", cfg.Template, "error", err)
		return NewFailure(err.Error())
	}
	if err := ctx.Err(); err != nil {
		return NewFailure(fmt.Sprintf("generation cancelled: %v", err))
	}

	root := g.Root(cfg.Name)
	g.logger.Info("generating project",
		"name", cfg.Name,
		"template", tmpl.Name,
		"root", root,
		"entries", tmpl.EntryCount(),
	)

	if err := g.createRoot(root); err != nil {
		return NewFailure(err.Error())
	}

	res := NewFailure()
	g.materialize(ctx, res, root, tmpl, cfg)

	if len(res.Errors) == 0 {
		done := NewSuccess(root, res.FilesCreated)
		done.Warnings = res.Warnings
		res = done
	}

	g.checkVersion(res, cfg.Version)
	g.checkManifest(res, root)

	g.logger.Info("project generation finished",
		"name", cfg.Name,
		"success", res.Success,
		"created", len(res.FilesCreated),
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)
	return res
}

// createRoot creates root if and only if nothing is there yet.
func (g *Generator) createRoot(root string) error {
	if g.baseDir != "" {
		if err := os.MkdirAll(g.baseDir, dirPerm); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
	}
	if err := os.Mkdir(root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %q", ErrProjectExists, root)
		}
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	return nil
}

func (g *Generator) materialize(ctx context.Context, res *Result, root string, tmpl templates.Template, cfg ProjectConfig) {
	for _, dir := range tmpl.Structure.Directories {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), dirPerm); err != nil {
			g.fail(res, fmt.Sprintf("failed to create directory %q: %v", dir, err))
			continue
		}
		res.AddCreated(MarkerDir, dir)
	}
	if cancelled(ctx, res) {
		return
	}

	for _, file := range tmpl.Structure.Files {
		path := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			g.fail(res, fmt.Sprintf("failed to create parent directory for %q: %v", file.Path, err))
			continue
		}
		content := file.Content
		if file.IsTemplate {
			content = Render(content, cfg)
		}
		if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
			g.fail(res, fmt.Sprintf("failed to create file %q: %v", file.Path, err))
			continue
		}
		res.AddCreated(MarkerFile, file.Path)
	}
	if cancelled(ctx, res) {
		return
	}

	for _, cf := range tmpl.ConfigFiles {
		path := filepath.Join(root, cf.Name)
		if err := os.WriteFile(path, []byte(Render(cf.Content, cfg)), filePerm); err != nil {
			g.fail(res, fmt.Sprintf("failed to create config file %q: %v", cf.Name, err))
			continue
		}
		res.AddCreated(MarkerConfig, cf.Name)
	}
}

func (g *Generator) fail(res *Result, msg string) {
	g.logger.Warn("scaffold step failed", "error", msg)
	res.AddError(msg)
}

func cancelled(ctx context.Context, res *Result) bool {
	if err := ctx.Err(); err != nil {
		res.AddError(fmt.Sprintf("generation cancelled: %v", err))
		return true
	}
	return false
}

func (g *Generator) checkVersion(res *Result, version string) {
	if _, err := semver.StrictNewVersion(version); err != nil {
		res.AddWarning(fmt.Sprintf("version %q is not a valid semantic version", version))
	}
}

// checkManifest validates a generated package.json against the embedded schema.
func (g *Generator) checkManifest(res *Result, root string) {
	var written bool
	for _, m := range res.FilesCreated {
		if m.Kind == MarkerFile && m.Path == manifest.FileName {
			written = true
			break
		}
	}
	if !written {
		return
	}

	vr, err := manifest.ValidateFile(filepath.Join(root, manifest.FileName))
	if err != nil {
		res.AddWarning(fmt.Sprintf("%s: could not validate: %v", manifest.FileName, err))
		return
	}
	for _, issue := range vr.Issues {
		res.AddWarning(fmt.Sprintf("%s: %s", manifest.FileName, issue))
	}
}
