// internal/version/version.go
package version

// Version is stamped at release time:
//
//	go build -ldflags "-X gtfseg/internal/version.Version=1.2.3"
var Version = "0.0.0-dev"
