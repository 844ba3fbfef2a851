// Package build carries version metadata stamped in at link time.
package build

// Version is overridden via -ldflags at release build time.
var Version = "dev"
