package version

import "fmt"

// Set at build time with -ldflags "-X github.com/redjax/weatherwidget/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	Package = "weatherwidget"
	RepoUrl = "https://github.com/redjax/weatherwidget"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current build
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

func (p PackageInfo) String() string {
	return fmt.Sprintf("%s version:%s commit:%s date:%s", p.PackageName, p.PackageVersion, p.PackageCommit, p.PackageReleaseDate)
}
