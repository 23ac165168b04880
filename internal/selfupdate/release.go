package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Asset is a file attached to a release.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
	Size int64  `json:"size"`
}

// Release is the subset of the GitHub release payload fff needs.
type Release struct {
	Tag    string  `json:"tag_name"`
	URL    string  `json:"html_url"`
	Assets []Asset `json:"assets"`
}

// Asset returns the attachment called name.
func (r *Release) Asset(name string) (Asset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// CheckResult compares the running version with the latest release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

// Check reports whether a release newer than current exists. Versions that
// are not valid semver never have an update.
func (c *Checker) Check(ctx context.Context, current string) (*CheckResult, error) {
	rel, err := c.latest(ctx)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   rel.Tag,
		ReleaseURL:      rel.URL,
		UpdateAvailable: newer(rel.Tag, current),
	}, nil
}

func (c *Checker) latest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	data, err := c.get(ctx, url, "application/vnd.github+json", maxMetadata)
	if errors.Is(err, errNotFound) {
		return nil, ErrNoRelease
	}
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}

	var rel Release
	if err := json.Unmarshal(data, &rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.Tag == "" {
		return nil, ErrNoRelease
	}
	return &rel, nil
}

// newer reports whether tag is a higher semver than current.
func newer(tag, current string) bool {
	t, c := canonical(tag), canonical(current)
	return semver.IsValid(t) && semver.IsValid(c) && semver.Compare(t, c) > 0
}

// canonical adds the "v" prefix semver expects.
func canonical(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
