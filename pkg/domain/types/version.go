package types

// Version is the pkgcoord build version, overridden with -ldflags at release time
var Version = "dev"
