package types

// AppName is the CLI binary name.
const AppName = "pkgbld"

// Version is the pkgbld release version, overridable at build time via
// -ldflags "-X github.com/pslmodels/pkgbld/pkg/domain/types.Version=...".
var Version = "0.1.0"
