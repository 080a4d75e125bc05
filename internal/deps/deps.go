// Package deps computes the npm packages a generated project installs.
package deps

import "github.com/suf-labs/suf-gen/internal/prompt"

// List holds development and runtime package names in install order.
// Entries are appended only; duplicates are not removed.
type List struct {
	Dev     []string
	Runtime []string
}

var baseDev = []string{
	"@babel/cli",
	"@babel/core",
	"@babel/preset-env",
	"@babel/preset-typescript",
	"@types/webpack",
	"@types/webpack-dev-server",
	"babel-loader",
	"css-loader",
	"del-cli",
	"file-loader",
	"fork-ts-checker-webpack-plugin",
	"html-webpack-plugin",
	"sass-loader",
	"sass-node",
	"style-loader",
	"ts-node",
	"typescript",
	"suf-cli",
	"webpack",
	"webpack-cli",
	"webpack-dev-server",
}

var snowpackDev = []string{
	"@prefresh/snowpack",
	"@snowpack/app-scripts-preact",
	"@snowpack/plugin-dotenv",
	"@snowpack/plugin-sass",
	"@snowpack/plugin-typescript",
	"snowpack",
}

// Build returns the package lists for a, starting from the fixed base list.
func Build(a prompt.Answers) List {
	l := List{
		Dev:     append([]string(nil), baseDev...),
		Runtime: []string{},
	}
	if a.Preact {
		l.Runtime = append(l.Runtime, "preact", "preact-router")
		l.Dev = append(l.Dev, "@babel/plugin-transform-react-jsx")
	}
	if a.Snowpack {
		l.Dev = append(l.Dev, snowpackDev...)
	}
	return l
}
