// Package download saves thumbnail images to disk.
package download

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/network"
	"github.com/thumbgrab/thumbgrab/youtube"
)

// Save fetches thumb and writes it into dir under youtube.FileName.
// The image only appears under its final name once fully written.
// It returns the path written.
func Save(ctx context.Context, thumb youtube.Thumbnail, id youtube.VideoID, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumb.URL, nil)
	if err != nil {
		return "", err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", thumb.Tier, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", thumb.Tier, resp.Status)
	}

	path := filepath.Join(dir, youtube.FileName(id, thumb.Tier))
	part := path + ".part"

	fs := filesystem.API()
	if err := afero.WriteReader(fs, part, resp.Body); err != nil {
		_ = fs.Remove(part)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := fs.Rename(part, path); err != nil {
		return "", err
	}

	log.Infof("saved %s to %s", thumb.URL, path)
	return path, nil
}
