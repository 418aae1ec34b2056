package registry

import (
	"strings"

	"github.com/charmbracelet/log"
)

const placeholderCore = "0.0.1"

// ClassifyVersion returns the channel key and the value stored for one raw
// version string. ok is false when the version is excluded: placeholder
// releases, internal builds, and tags with an unrecognized prefix.
//
// Stable versions store their numeric core, which for a version without a
// "-" is the raw string itself. Pre-release versions store the full raw
// string.
func ClassifyVersion(raw string) (key, value string, ok bool) {
	segments := strings.Split(raw, "-")
	core := segments[0]

	if core == placeholderCore {
		return "", "", false
	}
	if len(segments) == 1 {
		return core, core, true
	}

	tag := segments[1]
	if strings.Contains(tag, "internal") {
		return "", "", false
	}

	switch {
	case strings.HasPrefix(tag, "rc"):
		return core + SuffixRC, raw, true
	case strings.HasPrefix(tag, "beta"):
		return core + SuffixBeta, raw, true
	case strings.HasPrefix(tag, "preview"):
		return core + SuffixRC, raw, true
	}
	return "", "", false
}

// Classify buckets raw versions into a new VersionTable. Versions dropped for
// an unrecognized tag prefix are reported at debug level on logger, which
// may be nil.
func Classify(versions []string, logger *log.Logger) VersionTable {
	table := make(VersionTable)
	for _, raw := range versions {
		key, value, ok := ClassifyVersion(raw)
		if !ok {
			if logger != nil && isUnrecognized(raw) {
				logger.Debug("skipping version with unrecognized tag", "version", raw)
			}
			continue
		}
		table[key] = append(table[key], value)
	}
	return table
}

// isUnrecognized reports whether raw was dropped for its tag prefix rather
// than by one of the exclusion rules.
func isUnrecognized(raw string) bool {
	segments := strings.Split(raw, "-")
	return len(segments) > 1 && segments[0] != placeholderCore && !strings.Contains(segments[1], "internal")
}
