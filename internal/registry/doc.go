// Package registry queries the npm registry for the published versions of a
// package and groups them into release channels.
//
// A channel key is the numeric version core for stable releases ("1.2.0") or
// the core suffixed with "-beta" or "-rc" for pre-release lines
// ("1.2.0-beta"). Preview builds share the "-rc" channel. Development
// placeholders (core "0.0.1") and internal builds are never listed.
//
//	c := registry.NewClient(registry.WithBaseURL("https://registry.npmjs.org"))
//	table, err := c.ClassifyVersions(ctx, "@minecraft/server")
//	if err != nil {
//	    return err
//	}
//	for _, ch := range registry.Channels(table) {
//	    versions, _ := registry.Versions(table, ch)
//	    fmt.Println(ch, versions)
//	}
//
// A VersionTable is built fresh for every query and is never cached.
package registry
