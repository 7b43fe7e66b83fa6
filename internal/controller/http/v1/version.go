package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gym-network-toolkit/portal/config"
)

const _releaseCheckTimeout = 5 * time.Second

// VersionRoute reports the running version and, best effort, the latest
// published release of the configured repo.
type VersionRoute struct {
	cfg *config.Config
}

// NewVersionRoute -.
func NewVersionRoute(cfg *config.Config) *VersionRoute {
	return &VersionRoute{cfg: cfg}
}

type versionResponse struct {
	Current string `json:"current"`
	Latest  string `json:"latest,omitempty"`
}

// LatestReleaseHandler -.
func (vr *VersionRoute) LatestReleaseHandler(c *gin.Context) {
	resp := versionResponse{Current: vr.cfg.App.Version}

	if latest, ok := vr.latestRelease(c); ok {
		resp.Latest = latest
	}

	c.JSON(http.StatusOK, resp)
}

func (vr *VersionRoute) latestRelease(c *gin.Context) (string, bool) {
	url := "https://api.github.com/repos/" + vr.cfg.App.Repo + "/releases/latest"

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", false
	}

	client := &http.Client{Timeout: _releaseCheckTimeout}

	res, err := client.Do(req)
	if err != nil {
		return "", false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", false
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(res.Body).Decode(&release); err != nil {
		return "", false
	}

	return release.TagName, true
}
