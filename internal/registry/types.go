package registry

import "encoding/json"

// Channel suffixes appended to the numeric core of pre-release versions.
const (
	SuffixBeta = "-beta"
	SuffixRC   = "-rc"
)

// VersionTable maps a channel key to the raw versions published under it.
// Bucket order is insertion order; use Channels and Versions for the sorted
// views presented to users.
type VersionTable map[string][]string

// Len returns the total number of versions across all channels.
func (t VersionTable) Len() int {
	n := 0
	for _, vs := range t {
		n += len(vs)
	}
	return n
}

// packageDocument is the subset of the npm package document we decode.
// Only the keys of Versions are used.
type packageDocument struct {
	Name     string                     `json:"name"`
	Versions map[string]json.RawMessage `json:"versions"`
}
