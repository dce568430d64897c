package cli

// Version is the current release version. Overridden at build time via
// -ldflags "-X github.com/kyzipstar6/imageeditor/pkg/cli.Version=x.y.z".
var Version = "0.1.0"
