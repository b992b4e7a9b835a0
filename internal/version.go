package internal

// Version is the textlens release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/textlens/internal.Version=...".
var Version = "0.1.0"
