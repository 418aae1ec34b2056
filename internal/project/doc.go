// Package project holds the add-on project description collected by the
// wizard and persisted at .mcaddon/project.yaml. Info is a plain value: each
// wizard step receives one and returns an updated copy.
package project
