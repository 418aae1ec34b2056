// Package cli defines the Cobra command tree for the mcaddon CLI. Each file
// registers one top-level command (init, switch, versions, etc.) with the
// root command. Commands delegate to internal packages for business logic and
// only handle flag parsing, output formatting, and user interaction.
//
// All commands accept --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli
