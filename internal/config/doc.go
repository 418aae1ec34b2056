// Package config manages user-level settings stored at ~/.mcaddon/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the npm registry URL queried for script module versions.
package config
