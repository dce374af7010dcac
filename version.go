package rupavali

// Version is the rupavali release version. Overridden at build time via
// -ldflags "-X github.com/vyakarana-tools/rupavali.Version=...".
var Version = "0.3.0"
