// Package filesystem routes every disk access (config, logs, downloaded thumbnails)
// through a swappable afero backend so tests can run against memory.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance.
func API() afero.Afero {
	return backend
}

// SetFs installs an arbitrary afero backend.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs installs a volatile in-memory backend.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}
