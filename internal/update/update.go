// Package update asks GitHub whether a newer wikiscroll release exists.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ReleasesURL is the GitHub endpoint for the latest wikiscroll release.
const ReleasesURL = "https://api.github.com/repos/matheuskafuri/wikiscroll/releases/latest"

const checkTimeout = 5 * time.Second

// Result describes a release newer than the running build.
type Result struct {
	LatestVersion string
}

type release struct {
	TagName string `json:"tag_name"`
}

// Check looks up the latest release. It returns nil when the build is up to
// date, is not a tagged version (e.g. "dev"), or the lookup fails.
func Check(ctx context.Context, currentVersion string) *Result {
	return CheckURL(ctx, http.DefaultClient, ReleasesURL, currentVersion)
}

// CheckURL is Check against an arbitrary releases endpoint.
func CheckURL(ctx context.Context, client *http.Client, releasesURL, currentVersion string) *Result {
	current, ok := canonical(currentVersion)
	if !ok {
		return nil
	}

	tag, err := latestTag(ctx, client, releasesURL)
	if err != nil {
		return nil
	}
	latest, ok := canonical(tag)
	if !ok || semver.Compare(latest, current) <= 0 {
		return nil
	}
	return &Result{LatestVersion: strings.TrimPrefix(tag, "v")}
}

func canonical(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v, semver.IsValid(v)
}

func latestTag(ctx context.Context, client *http.Client, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", err
	}
	return rel.TagName, nil
}
