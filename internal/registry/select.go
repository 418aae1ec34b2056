package registry

import (
	"fmt"
	"slices"
	"sort"
)

// Channels returns the table's channel keys sorted lexicographically
// descending.
func Channels(t VersionTable) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// Versions returns a sorted copy of the versions under key, lexicographically
// descending. The table is not modified.
func Versions(t VersionTable, key string) ([]string, error) {
	bucket, ok := t[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, key)
	}
	out := slices.Clone(bucket)
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

// Latest returns the first channel and the first version within it, in the
// order Channels and Versions present them. ok is false for an empty table.
func Latest(t VersionTable) (channel, version string, ok bool) {
	channels := Channels(t)
	if len(channels) == 0 {
		return "", "", false
	}
	versions, err := Versions(t, channels[0])
	if err != nil || len(versions) == 0 {
		return "", "", false
	}
	return channels[0], versions[0], true
}
