package config

// Version is the sociograph binary version.
// Set at build time via: -ldflags "-X github.com/sociograph/sociograph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
