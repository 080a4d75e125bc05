package templates

// Template identifiers.
const (
	IDPackageJSON          = "package.json"
	IDBabelrc              = ".babelrc"
	IDWebpack              = "webpack"
	IDTsconfig             = "tsconfig"
	IDGitignore            = ".gitignore"
	IDAsyncRoute           = "asyncRoute.tsx"
	IDRedirect             = "redirect.tsx"
	IDApp                  = "app.tsx"
	IDHome                 = "home.tsx"
	IDMainLayout           = "mainLayout.tsx"
	IDSnowpack             = "snowpack"
	IDSnowpackImportPlugin = "snowpack-add-import-plugin"
	IDIndexSass            = "index.sass"
	IDIndexMain            = "index.main"
	IDIndexHTML            = "index.html"
)

// IDs returns every template identifier in a stable order.
func IDs() []string {
	return []string{
		IDPackageJSON, IDBabelrc, IDWebpack, IDTsconfig, IDGitignore,
		IDAsyncRoute, IDRedirect, IDApp, IDHome, IDMainLayout,
		IDSnowpack, IDSnowpackImportPlugin, IDIndexSass, IDIndexMain, IDIndexHTML,
	}
}

// Request selects a template and carries its options. The set of
// implementations is closed to this package.
type Request interface {
	ID() string
	request()
}

// PackageJSON renders the npm manifest. An empty Author omits the field.
type PackageJSON struct {
	Name     string
	Suf      bool
	Author   string
	Snowpack bool
}

// Babelrc renders the babel transform config.
type Babelrc struct {
	Preact bool
}

// Webpack renders webpack.config.ts.
type Webpack struct {
	Preact   bool
	Snowpack bool
}

// Tsconfig renders tsconfig.json.
type Tsconfig struct {
	Preact bool
}

// Snowpack renders snowpack.config.js.
type Snowpack struct {
	Preact bool
}

// IndexMain renders the entry script (index.ts or index.tsx).
type IndexMain struct {
	Preact bool
}

// IndexHTML renders public/index.html.
type IndexHTML struct {
	Preact   bool
	Name     string
	Snowpack bool
}

type (
	Gitignore            struct{}
	AsyncRoute           struct{}
	Redirect             struct{}
	App                  struct{}
	Home                 struct{}
	MainLayout           struct{}
	SnowpackImportPlugin struct{}
	IndexSass            struct{}
)

func (PackageJSON) ID() string          { return IDPackageJSON }
func (Babelrc) ID() string              { return IDBabelrc }
func (Webpack) ID() string              { return IDWebpack }
func (Tsconfig) ID() string             { return IDTsconfig }
func (Gitignore) ID() string            { return IDGitignore }
func (AsyncRoute) ID() string           { return IDAsyncRoute }
func (Redirect) ID() string             { return IDRedirect }
func (App) ID() string                  { return IDApp }
func (Home) ID() string                 { return IDHome }
func (MainLayout) ID() string           { return IDMainLayout }
func (Snowpack) ID() string             { return IDSnowpack }
func (SnowpackImportPlugin) ID() string { return IDSnowpackImportPlugin }
func (IndexSass) ID() string            { return IDIndexSass }
func (IndexMain) ID() string            { return IDIndexMain }
func (IndexHTML) ID() string            { return IDIndexHTML }

func (PackageJSON) request()          {}
func (Babelrc) request()              {}
func (Webpack) request()              {}
func (Tsconfig) request()             {}
func (Gitignore) request()            {}
func (AsyncRoute) request()           {}
func (Redirect) request()             {}
func (App) request()                  {}
func (Home) request()                 {}
func (MainLayout) request()           {}
func (Snowpack) request()             {}
func (SnowpackImportPlugin) request() {}
func (IndexSass) request()            {}
func (IndexMain) request()            {}
func (IndexHTML) request()            {}
