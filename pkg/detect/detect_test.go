package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	return dir
}

func TestProjectContextDetection(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		language  string
		framework string
	}{
		{"nextjs", []string{"package.json", "next.config.js"}, "javascript", "nextjs"},
		{"vue", []string{"package.json", "vue.config.js"}, "javascript", "vue"},
		{"plain javascript", []string{"package.json"}, "javascript", "unknown"},
		{"django via requirements", []string{"requirements.txt", "manage.py"}, "python", "django"},
		{"django via setup.py", []string{"setup.py", "manage.py"}, "python", "django"},
		{"flask app.py", []string{"requirements.txt", "app.py"}, "python", "flask"},
		{"flask application.py", []string{"setup.py", "application.py"}, "python", "flask"},
		{"plain python", []string{"requirements.txt"}, "python", "unknown"},
		{"rust", []string{"Cargo.toml"}, "rust", "unknown"},
		{"go", []string{"go.mod"}, "go", "unknown"},
		{"no markers", []string{"README.md", "Makefile"}, "unknown", "unknown"},
		{"empty directory", nil, "unknown", "unknown"},
		{"javascript wins over go", []string{"package.json", "go.mod"}, "javascript", "unknown"},
		{"python wins over rust", []string{"setup.py", "Cargo.toml"}, "python", "unknown"},
		{"nextjs wins over vue", []string{"package.json", "next.config.js", "vue.config.js"}, "javascript", "nextjs"},
		{"django wins over flask", []string{"requirements.txt", "manage.py", "app.py"}, "python", "django"},
		{"framework file alone is not enough", []string{"manage.py"}, "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := ProjectContext(markerDir(t, tt.files...))
			require.NoError(t, err)
			assert.Equal(t, tt.language, ctx.Language)
			assert.Equal(t, tt.framework, ctx.Framework)
			assert.Equal(t, "general", ctx.ProjectType)
		})
	}
}

func TestProjectContextUnreadableDirectory(t *testing.T) {
	ctx, err := ProjectContext(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Equal(t, "unknown", ctx.Language)
}

func TestProjectContextIgnoresNestedMarkers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "package.json"), nil, 0o644))

	ctx, err := ProjectContext(dir)
	require.NoError(t, err)
	assert.Equal(t, "unknown", ctx.Language)
}
