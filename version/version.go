// Package version - Build-Version von etagger
package version

// Version wird beim Build per -ldflags gesetzt
var Version string = "0.0.0"
