package scaffold

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/suf-labs/suf-gen/internal/manifest"
	"github.com/suf-labs/suf-gen/internal/prompt"
	"github.com/suf-labs/suf-gen/internal/templates"
	"github.com/suf-labs/suf-gen/internal/ui"
)

func paths(files []File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		answers prompt.Answers
		want    []string
	}{
		{
			name:    "plain",
			answers: prompt.Answers{ProjectName: "demo"},
			want: []string{
				"package.json", ".babelrc", "webpack.config.ts", "tsconfig.json", ".gitignore",
				"src/index.sass", "src/index.ts", "public/index.html",
			},
		},
		{
			name:    "preact",
			answers: prompt.Answers{ProjectName: "demo", Preact: true},
			want: []string{
				"package.json", ".babelrc", "webpack.config.ts", "tsconfig.json", ".gitignore",
				"src/components/asyncRoute.tsx", "src/components/redirect.tsx", "src/app.tsx",
				"src/views/home.tsx", "src/layouts/main.tsx",
				"src/index.sass", "src/index.tsx", "public/index.html",
			},
		},
		{
			name:    "preact and snowpack",
			answers: prompt.Answers{ProjectName: "demo", Preact: true, Snowpack: true},
			want: []string{
				"package.json", ".babelrc", "webpack.config.ts", "tsconfig.json", ".gitignore",
				"src/components/asyncRoute.tsx", "src/components/redirect.tsx", "src/app.tsx",
				"src/views/home.tsx", "src/layouts/main.tsx",
				"snowpack.config.js", "snowpack-plugin-add-import.js",
				"src/index.sass", "src/index.tsx", "public/index.html",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths(Plan(tt.answers, ""))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan() paths =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestPlanCarriesOptions(t *testing.T) {
	a := prompt.Answers{ProjectName: "demo", Preact: true, Snowpack: true, Suf: true}
	plan := Plan(a, "Ada <ada@example.com>")

	pkg, ok := plan[0].Request.(templates.PackageJSON)
	if !ok {
		t.Fatalf("first request = %T, want PackageJSON", plan[0].Request)
	}
	want := templates.PackageJSON{Name: "demo", Suf: true, Author: "Ada <ada@example.com>", Snowpack: true}
	if pkg != want {
		t.Errorf("PackageJSON = %+v, want %+v", pkg, want)
	}

	last, ok := plan[len(plan)-1].Request.(templates.IndexHTML)
	if !ok {
		t.Fatalf("last request = %T, want IndexHTML", plan[len(plan)-1].Request)
	}
	if last.Name != "demo" || !last.Preact || !last.Snowpack {
		t.Errorf("IndexHTML = %+v", last)
	}
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	w := &Writer{Fs: fs, Root: "demo", Console: ui.New(&out)}
	a := prompt.Answers{ProjectName: "demo", Preact: true, Suf: true}

	result, err := Generate(w, Plan(a, "Ada <ada@example.com>"))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if result.OutputDir != "demo" {
		t.Errorf("OutputDir = %q", result.OutputDir)
	}
	if len(result.Files) != 13 {
		t.Errorf("wrote %d files, want 13", len(result.Files))
	}

	for _, f := range result.Files {
		if ok, _ := afero.Exists(fs, filepath.Join("demo", f)); !ok {
			t.Errorf("%s not written", f)
		}
	}
	if got := strings.Count(out.String(), "Created file:"); got != 13 {
		t.Errorf("console reported %d files, want 13", got)
	}

	pkg, err := manifest.ParseFile(fs, filepath.Join("demo", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Name != "demo" || !pkg.UsesSuf() || pkg.Author != "Ada <ada@example.com>" {
		t.Errorf("package.json = %+v", pkg)
	}

	gi, _ := afero.ReadFile(fs, filepath.Join("demo", ".gitignore"))
	if string(gi) != "node_modules\ndist" {
		t.Errorf(".gitignore = %q", gi)
	}
}

func TestGenerateSnowpackManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := &Writer{Fs: fs, Root: "demo"}
	a := prompt.Answers{ProjectName: "demo", Preact: true, Snowpack: true}

	if _, err := Generate(w, Plan(a, "")); err != nil {
		t.Fatal(err)
	}
	pkg, err := manifest.ParseFile(fs, filepath.Join("demo", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !pkg.UsesSnowpack() {
		t.Errorf("start script = %q, want snowpack dev", pkg.Scripts.Start)
	}
	if pkg.Author != "" {
		t.Errorf("Author = %q, want omitted", pkg.Author)
	}
}

func TestGenerateWarnsOnInvalidManifest(t *testing.T) {
	w := &Writer{Fs: afero.NewMemMapFs(), Root: "demo"}
	plan := []File{{PackageJSONPath, templates.PackageJSON{}}}

	result, err := Generate(w, plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for an empty project name")
	}
	if !strings.HasPrefix(result.Warnings[0], "package.json: ") {
		t.Errorf("warning = %q", result.Warnings[0])
	}
}

func TestGenerateStopsOnWriteError(t *testing.T) {
	w := &Writer{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), Root: "demo"}

	result, err := Generate(w, Plan(prompt.Answers{ProjectName: "demo"}, ""))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %v, want none", result.Files)
	}
}
