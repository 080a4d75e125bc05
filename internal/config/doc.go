// Package config manages user-level settings stored at ~/.suf-gen/config.yaml.
// Values can be overridden with SUFGEN_* environment variables, e.g.
// SUFGEN_PACKAGE_MANAGER=npm or SUFGEN_INSTALL_FALLBACK_IN_PROJECT=true.
package config
