package manifest

// Package holds the package.json fields suf-gen writes.
type Package struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Author  string  `json:"author,omitempty"`
	License string  `json:"license"`
	Scripts Scripts `json:"scripts"`
}

// Scripts is the scripts block of a generated package.json.
type Scripts struct {
	Start string `json:"start"`
	Build string `json:"build"`
	Suf   string `json:"suf,omitempty"`
}

// UsesSuf reports whether the project was generated with the suf script.
func (p *Package) UsesSuf() bool {
	return p.Scripts.Suf != ""
}

// UsesSnowpack reports whether the dev server is snowpack.
func (p *Package) UsesSnowpack() bool {
	return p.Scripts.Start == "snowpack dev"
}
