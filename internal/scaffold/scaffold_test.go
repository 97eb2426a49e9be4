package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

// fakeSource serves a fixed set of templates.
type fakeSource map[string]templates.Template

func (s fakeSource) Get(name string) (templates.Template, bool) {
	t, ok := s[name]
	return t, ok
}

func TestGenerate_BuiltinTemplates(t *testing.T) {
	for _, tmpl := range templates.List() {
		t.Run(tmpl.Name, func(t *testing.T) {
			chdir(t, t.TempDir())

			res := NewGenerator().Generate(context.Background(), NewProjectConfig("demo", tmpl.Name))

			require.True(t, res.Success, "errors: %v", res.Errors)
			assert.Empty(t, res.Errors)
			assert.Empty(t, res.Warnings)
			assert.Equal(t, "demo", res.ProjectPath)
			assert.Len(t, res.FilesCreated, tmpl.EntryCount())

			for _, dir := range tmpl.Structure.Directories {
				assert.DirExists(t, filepath.Join("demo", dir))
			}
			for _, f := range tmpl.Structure.Files {
				assert.FileExists(t, filepath.Join("demo", f.Path))
			}
			for _, c := range tmpl.ConfigFiles {
				assert.FileExists(t, filepath.Join("demo", c.Name))
			}
		})
	}
}

func TestGenerate_MarkerOrder(t *testing.T) {
	chdir(t, t.TempDir())

	res := NewGenerator().Generate(context.Background(), NewProjectConfig("api", "api-express"))
	require.True(t, res.Success)

	want := []string{
		"📁 src", "📁 src/routes", "📁 src/middleware", "📁 src/types", "📁 tests",
		"📄 package.json", "📄 tsconfig.json", "📄 README.md", "📄 src/index.ts",
		"⚙️ .gitignore", "⚙️ .env.example",
	}
	assert.Equal(t, want, res.Lines())
}

func TestGenerate_RendersPlaceholders(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := NewProjectConfig("my-lib", "library-typescript")
	cfg.Description = "Tiny helpers"
	cfg.Author = "Ada"
	cfg.Version = "2.0.0"
	cfg.License = "Apache-2.0"

	res := NewGenerator().Generate(context.Background(), cfg)
	require.True(t, res.Success, "errors: %v", res.Errors)

	pkg := readGenerated(t, "my-lib", "package.json")
	assert.Contains(t, pkg, `"name": "my-lib"`)
	assert.Contains(t, pkg, `"version": "2.0.0"`)
	assert.Contains(t, pkg, `"description": "Tiny helpers"`)
	assert.Contains(t, pkg, `"author": "Ada"`)
	assert.Contains(t, pkg, `"license": "Apache-2.0"`)
	assert.NotContains(t, pkg, "{{")

	license := readGenerated(t, "my-lib", "LICENSE")
	assert.True(t, strings.HasPrefix(license, "Apache-2.0 License"))
}

func TestGenerate_NonTemplateFileWrittenVerbatim(t *testing.T) {
	chdir(t, t.TempDir())

	src := fakeSource{"raw": {
		Name: "raw",
		Structure: templates.Structure{
			Files: []templates.ProjectFile{
				{Path: "raw.txt", Content: "keep {{PROJECT_NAME}}", IsTemplate: false},
				{Path: "cooked.txt", Content: "hello {{PROJECT_NAME}}", IsTemplate: true},
			},
		},
		ConfigFiles: []templates.ConfigFile{
			{Name: ".env", Content: "APP={{PROJECT_NAME}}"},
		},
	}}

	res := NewGenerator(WithSource(src)).Generate(context.Background(), NewProjectConfig("demo", "raw"))
	require.True(t, res.Success)

	assert.Equal(t, "keep {{PROJECT_NAME}}", readGenerated(t, "demo", "raw.txt"))
	assert.Equal(t, "hello demo", readGenerated(t, "demo", "cooked.txt"))
	assert.Equal(t, "APP=demo", readGenerated(t, "demo", ".env"))
}

func TestGenerate_InvalidNameWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "cannot be empty"},
		{"my app", "cannot contain spaces"},
		{"tab\tname", "cannot contain spaces"},
		{"my.app", "can only contain alphanumeric characters, hyphens, and underscores"},
		{"../escape", "can only contain alphanumeric characters, hyphens, and underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)

			res := NewGenerator().Generate(context.Background(), NewProjectConfig(tt.name, "api-express"))

			assert.False(t, res.Success)
			assert.Empty(t, res.ProjectPath)
			assert.Empty(t, res.FilesCreated)
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.want)
			assertEmptyDir(t, dir)
		})
	}
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	res := NewGenerator().Generate(context.Background(), NewProjectConfig("demo", "react-native"))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `"react-native"`)
	assert.Contains(t, res.Errors[0], "template not found")
	assert.NoDirExists(t, filepath.Join(dir, "demo"))
	assertEmptyDir(t, dir)
}

func TestGenerate_ExistingDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	gen := NewGenerator()

	first := gen.Generate(context.Background(), NewProjectConfig("demo", "api-express"))
	require.True(t, first.Success)

	require.NoError(t, os.WriteFile(filepath.Join("demo", "marker.txt"), []byte("mine"), 0o644))

	second := gen.Generate(context.Background(), NewProjectConfig("demo", "fullstack-nextjs"))

	assert.False(t, second.Success)
	assert.Empty(t, second.FilesCreated)
	require.Len(t, second.Errors, 1)
	assert.Contains(t, second.Errors[0], "already exists")
	assert.Contains(t, second.Errors[0], `"demo"`)

	// Nothing from the second template was written.
	assert.NoDirExists(t, filepath.Join("demo", "prisma"))
	assert.Equal(t, "mine", readGenerated(t, "demo", "marker.txt"))
}

func TestGenerate_ExistingFileAtRoot(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("demo", []byte("x"), 0o644))

	res := NewGenerator().Generate(context.Background(), NewProjectConfig("demo", "api-express"))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "already exists")
}

func TestGenerate_PartialFailure(t *testing.T) {
	chdir(t, t.TempDir())

	src := fakeSource{"clash": {
		Name: "clash",
		Structure: templates.Structure{
			Directories: []string{"src", "assets"},
			Files: []templates.ProjectFile{
				{Path: "README.md", Content: "# {{PROJECT_NAME}}", IsTemplate: true},
				{Path: "assets", Content: "cannot be written over a directory"},
				{Path: "src/index.ts", Content: "export {}"},
			},
		},
		ConfigFiles: []templates.ConfigFile{
			{Name: ".gitignore", Content: "node_modules/"},
		},
	}}

	res := NewGenerator(WithSource(src)).Generate(context.Background(), NewProjectConfig("demo", "clash"))

	assert.False(t, res.Success)
	assert.True(t, res.Partial())
	assert.Empty(t, res.ProjectPath)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `failed to create file "assets"`)
	assert.Equal(t, []Marker{
		{MarkerDir, "src"},
		{MarkerDir, "assets"},
		{MarkerFile, "README.md"},
		{MarkerFile, "src/index.ts"},
		{MarkerConfig, ".gitignore"},
	}, res.FilesCreated)

	// Nothing is rolled back.
	assert.FileExists(t, filepath.Join("demo", "README.md"))
	assert.FileExists(t, filepath.Join("demo", ".gitignore"))
}

func TestGenerate_DuplicateFileOverwrites(t *testing.T) {
	chdir(t, t.TempDir())

	src := fakeSource{"dup": {
		Name: "dup",
		Structure: templates.Structure{
			Files: []templates.ProjectFile{
				{Path: "a.txt", Content: "first"},
				{Path: "a.txt", Content: "second"},
			},
		},
	}}

	res := NewGenerator(WithSource(src)).Generate(context.Background(), NewProjectConfig("demo", "dup"))

	require.True(t, res.Success)
	assert.Len(t, res.FilesCreated, 2)
	assert.Equal(t, "second", readGenerated(t, "demo", "a.txt"))
}

func TestGenerate_BaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "projects", "nested")

	res := NewGenerator(WithBaseDir(base)).Generate(context.Background(), NewProjectConfig("demo", "library-typescript"))

	require.True(t, res.Success, "errors: %v", res.Errors)
	assert.Equal(t, filepath.Join(base, "demo"), res.ProjectPath)
	assert.FileExists(t, filepath.Join(base, "demo", "package.json"))
}

func TestGenerate_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewGenerator().Generate(ctx, NewProjectConfig("demo", "api-express"))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "cancelled")
	assertEmptyDir(t, dir)
}

func TestGenerate_Warnings(t *testing.T) {
	t.Run("version is not semver", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfg := NewProjectConfig("demo", "api-express")
		cfg.Version = "latest"

		res := NewGenerator().Generate(context.Background(), cfg)

		assert.True(t, res.Success)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], `version "latest"`)
	})

	t.Run("package name breaks npm rules", func(t *testing.T) {
		chdir(t, t.TempDir())

		res := NewGenerator().Generate(context.Background(), NewProjectConfig("MyApp", "api-express"))

		assert.True(t, res.Success)
		require.NotEmpty(t, res.Warnings)
		assert.True(t, strings.HasPrefix(res.Warnings[0], "package.json: /name:"), res.Warnings[0])
	})

	t.Run("description breaks JSON", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfg := NewProjectConfig("demo", "api-express")
		cfg.Description = `say "hi"`

		res := NewGenerator().Generate(context.Background(), cfg)

		assert.True(t, res.Success)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "could not validate")
	})
}

func TestPreflight(t *testing.T) {
	chdir(t, t.TempDir())
	gen := NewGenerator()

	tmpl, err := gen.Preflight(NewProjectConfig("demo", "api-express"))
	require.NoError(t, err)
	assert.Equal(t, "api-express", tmpl.Name)

	_, err = gen.Preflight(NewProjectConfig("bad name", "api-express"))
	assert.True(t, errors.Is(err, ErrInvalidName))

	_, err = gen.Preflight(NewProjectConfig("demo", "nope"))
	assert.True(t, errors.Is(err, ErrTemplateNotFound))

	require.NoError(t, os.Mkdir("demo", 0o755))
	_, err = gen.Preflight(NewProjectConfig("demo", "api-express"))
	assert.True(t, errors.Is(err, ErrProjectExists))
}

func TestNewGenerator_NilOptions(t *testing.T) {
	gen := NewGenerator(WithSource(nil), WithLogger(nil))
	assert.NotNil(t, gen.source)
	assert.NotNil(t, gen.logger)
	assert.Equal(t, "demo", gen.Root("demo"))
}

func readGenerated(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(parts...))
	require.NoError(t, err)
	return string(data)
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "expected %s to be empty", dir)
}
