package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/suf-labs/suf-gen/internal/manifest"
	"github.com/suf-labs/suf-gen/internal/prompt"
	"github.com/suf-labs/suf-gen/internal/templates"
)

// PackageJSONPath is where the manifest is written inside the project.
const PackageJSONPath = "package.json"

// File is one project file: where it goes and what renders it.
type File struct {
	Path    string
	Request templates.Request
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Plan returns the files a project needs, in write order. An empty author is
// left out of package.json.
func Plan(a prompt.Answers, author string) []File {
	files := []File{
		{PackageJSONPath, templates.PackageJSON{Name: a.ProjectName, Suf: a.Suf, Author: author, Snowpack: a.Snowpack}},
		{".babelrc", templates.Babelrc{Preact: a.Preact}},
		{"webpack.config.ts", templates.Webpack{Preact: a.Preact, Snowpack: a.Snowpack}},
		{"tsconfig.json", templates.Tsconfig{Preact: a.Preact}},
		{".gitignore", templates.Gitignore{}},
	}

	if a.Preact {
		files = append(files,
			File{"src/components/asyncRoute.tsx", templates.AsyncRoute{}},
			File{"src/components/redirect.tsx", templates.Redirect{}},
			File{"src/app.tsx", templates.App{}},
			File{"src/views/home.tsx", templates.Home{}},
			File{"src/layouts/main.tsx", templates.MainLayout{}},
		)
	}
	if a.Snowpack {
		files = append(files,
			File{"snowpack.config.js", templates.Snowpack{Preact: a.Preact}},
			File{"snowpack-plugin-add-import.js", templates.SnowpackImportPlugin{}},
		)
	}

	index := "src/index.ts"
	if a.Preact {
		index = "src/index.tsx"
	}
	files = append(files,
		File{"src/index.sass", templates.IndexSass{}},
		File{index, templates.IndexMain{Preact: a.Preact}},
		File{"public/index.html", templates.IndexHTML{Preact: a.Preact, Name: a.ProjectName, Snowpack: a.Snowpack}},
	)
	return files
}

// Generate renders and writes every planned file. The first write error
// stops generation; files already written stay on disk. Schema problems in
// the written package.json are returned as warnings.
func Generate(w *Writer, plan []File) (*Result, error) {
	result := &Result{OutputDir: w.Root}

	for _, f := range plan {
		if err := w.Write(f.Path, templates.Render(f.Request)); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Path)
	}

	for _, f := range plan {
		if f.Path != PackageJSONPath {
			continue
		}
		path := filepath.Join(w.Root, PackageJSONPath)
		valResult, err := manifest.Generated.ValidateFile(w.Fs, path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate %s: %v", PackageJSONPath, err))
			break
		}
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", PackageJSONPath, issue))
		}
	}

	return result, nil
}
