// Package scaffold writes an add-on project to disk: the pack folders, both
// pack manifests, build configuration rendered from embedded templates, the
// script entry point, and the saved project config.
package scaffold
