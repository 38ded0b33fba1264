// Package path provides the dot-separated, quote-aware key paths used to
// address locations in a configuration tree.
//
// Paths are immutable value types. The textual form separates segments with
// dots and double-quotes segments containing reserved characters, so a
// rendered path always parses back to an equal path:
//
//	p, _ := path.Parse(`database."primary.host"`)
//	p.Len()    // 2
//	p.Render() // database."primary.host"
package path
