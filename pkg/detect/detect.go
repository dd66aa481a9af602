// Package detect maps marker files in a project directory to a coarse
// project context.
package detect

import (
	"fmt"
	"os"

	"github.com/axoden/axoden-go/pkg/model"
)

// ProjectContext inspects the top-level entries of dir (non-recursive) and
// returns the detected context. The first matching language rule wins:
// javascript, python, rust, go; framework refinement only happens inside
// the winning language branch.
func ProjectContext(dir string) (model.ProjectContext, error) {
	ctx := model.DefaultProjectContext()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ctx, fmt.Errorf("read project directory %s: %w", dir, err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	switch {
	case names["package.json"]:
		ctx.Language = "javascript"
		if names["next.config.js"] {
			ctx.Framework = "nextjs"
		} else if names["vue.config.js"] {
			ctx.Framework = "vue"
		}
	case names["requirements.txt"] || names["setup.py"]:
		ctx.Language = "python"
		if names["manage.py"] {
			ctx.Framework = "django"
		} else if names["app.py"] || names["application.py"] {
			ctx.Framework = "flask"
		}
	case names["Cargo.toml"]:
		ctx.Language = "rust"
	case names["go.mod"]:
		ctx.Language = "go"
	}

	return ctx, nil
}
