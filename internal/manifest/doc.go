// Package manifest builds, parses, and validates Minecraft Bedrock pack
// manifests (manifest.json). Behavior and resource pack manifests are derived
// from a project.Info and checked against the embedded JSON Schema before
// they are written.
package manifest
