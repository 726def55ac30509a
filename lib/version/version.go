package version

import (
	"context"
	"regexp"
	"time"

	"github.com/google/go-github/github"
	"oss.terrastruct.com/cmdlog"

	"github.com/promptframe/promptframe/lib/log"
)

// Pre-built binaries will have version set correctly during build time.
var Version = "v0.3.0-HEAD"

const (
	repoOwner = "promptframe"
	repoName  = "promptframe"
)

func OnlyNumbers() string {
	re, err := regexp.Compile("[0-9]+.[0-9]+.[0-9]+")
	if err != nil {
		return ""
	}
	return re.FindString(Version)
}

// CheckVersion prints the running version and compares it against the latest
// GitHub release. Network failures are reported as a note, never as an error:
// version checking is best effort.
func CheckVersion(ctx context.Context, clog *cmdlog.Logger) {
	clog.Info.Printf("promptframe %s", Version)

	ctx, cancel := log.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := github.NewClient(nil)
	release, _, err := client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		clog.Info.Printf("could not check for updates: %v", err)
		return
	}

	latest := release.GetTagName()
	if latest != "" && latest != Version {
		clog.Info.Printf("latest release is %s, see https://github.com/%s/%s/releases", latest, repoOwner, repoName)
	}
}
