package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/suf-labs/suf-gen/internal/manifest"
)

//go:embed files/*
var filesFS embed.FS

var textTemplates = template.Must(
	template.New("files").Funcs(sprig.TxtFuncMap()).ParseFS(filesFS, "files/*.tmpl"),
)

// Render returns the file content for req. A nil request yields "".
func Render(req Request) string {
	switch r := req.(type) {
	case PackageJSON:
		return renderPackageJSON(r)
	case Babelrc:
		return renderBabelrc(r)
	case Webpack:
		return execute("webpack.config.ts.tmpl", r)
	case Tsconfig:
		return renderTsconfig(r)
	case Gitignore:
		return "node_modules\ndist"
	case AsyncRoute:
		return static("asyncRoute.tsx")
	case Redirect:
		return static("redirect.tsx")
	case App:
		return static("app.tsx")
	case Home:
		return static("home.tsx")
	case MainLayout:
		return static("mainLayout.tsx")
	case Snowpack:
		return execute("snowpack.config.js.tmpl", r)
	case SnowpackImportPlugin:
		return static("snowpack-plugin-add-import.js")
	case IndexSass:
		return static("index.sass")
	case IndexMain:
		return execute("index.main.tmpl", r)
	case IndexHTML:
		return execute("index.html.tmpl", r)
	}
	return ""
}

func static(name string) string {
	data, err := filesFS.ReadFile("files/" + name)
	if err != nil {
		return ""
	}
	return string(data)
}

func execute(name string, data any) string {
	var buf bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return ""
	}
	return buf.String()
}

// ─── JSON documents ────────────────────────────────────────────────

func renderPackageJSON(o PackageJSON) string {
	m := manifest.Package{
		Name:    o.Name,
		Version: "1.0.0",
		Author:  o.Author,
		License: "MIT",
		Scripts: manifest.Scripts{
			Start: "webpack serve --mode development",
			Build: "del ./dist && webpack --mode production",
		},
	}
	if o.Snowpack {
		m.Scripts.Start = "snowpack dev"
	}
	if o.Suf {
		m.Scripts.Build = "suf && " + m.Scripts.Build
		m.Scripts.Suf = "suf"
	}
	return marshal(m)
}

type tsconfig struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
}

type compilerOptions struct {
	Target                           string `json:"target"`
	Module                           string `json:"module"`
	EsModuleInterop                  bool   `json:"esModuleInterop"`
	Strict                           bool   `json:"strict"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
	JSX                              string `json:"jsx,omitempty"`
	JSXFactory                       string `json:"jsxFactory,omitempty"`
}

func renderTsconfig(o Tsconfig) string {
	c := compilerOptions{
		Target:                           "es5",
		Module:                           "commonjs",
		EsModuleInterop:                  true,
		Strict:                           true,
		ForceConsistentCasingInFileNames: true,
	}
	if o.Preact {
		c.JSX = "react"
		c.JSXFactory = "h"
	}
	return marshal(tsconfig{CompilerOptions: c})
}

type babelrc struct {
	Presets []any `json:"presets"`
	Plugins []any `json:"plugins"`
}

type typescriptPreset struct {
	OnlyRemoveTypeImports bool   `json:"onlyRemoveTypeImports"`
	JSXPragma             string `json:"jsxPragma,omitempty"`
}

type jsxPlugin struct {
	Pragma     string `json:"pragma"`
	PragmaFrag string `json:"pragmaFrag"`
}

func renderBabelrc(o Babelrc) string {
	preset := typescriptPreset{OnlyRemoveTypeImports: true}
	plugins := []any{
		"@babel/proposal-class-properties",
		"@babel/proposal-object-rest-spread",
	}
	if o.Preact {
		preset.JSXPragma = "h"
		plugins = append(plugins, []any{
			"@babel/plugin-transform-react-jsx",
			jsxPlugin{Pragma: "h", PragmaFrag: "Fragment"},
		})
	}
	return marshal(babelrc{
		Presets: []any{"@babel/env", []any{"@babel/typescript", preset}},
		Plugins: plugins,
	})
}

// marshal encodes v with two-space indentation, without HTML escaping and
// without a trailing newline.
func marshal(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
