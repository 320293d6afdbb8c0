package youtube

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/thumbgrab/thumbgrab/log"
	"golang.org/x/sync/errgroup"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Prober checks which thumbnail tiers exist for a video.
type Prober struct {
	client Doer
	host   string
}

// NewProber returns a prober that sends existence checks through client
// to the image host.
func NewProber(client Doer, host string) *Prober {
	return &Prober{client: client, host: host}
}

// Probe issues one header-only request per tier, all at once, and returns
// after every request has settled.
//
// A failed or non-successful check only marks its own candidate absent.
// When every candidate is absent the result is returned together with
// ErrNoThumbnails. A cancelled context or a failure of the fan-out itself
// yields a *ProbeError.
func (p *Prober) Probe(ctx context.Context, id VideoID) (*Result, error) {
	if !id.Valid() {
		return nil, &ProbeError{ID: id, Err: ErrInvalidURL}
	}

	result := &Result{
		ID:         id,
		Batch:      uuid.NewString(),
		Thumbnails: Candidates(p.host, id),
	}
	logger := log.WithFields(logrus.Fields{"batch": result.Batch, "id": id})

	var g errgroup.Group
	for i := range result.Thumbnails {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("check %s: %v", result.Thumbnails[i].Tier, r)
				}
			}()

			thumb := &result.Thumbnails[i]
			thumb.Status, thumb.Exists = p.check(ctx, thumb.URL)
			logger.Debugf("%s -> %d", thumb.Tier, thumb.Status)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(err)
		return nil, &ProbeError{ID: id, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, &ProbeError{ID: id, Err: err}
	}

	if !lo.SomeBy(result.Thumbnails, func(t Thumbnail) bool { return t.Exists }) {
		logger.Info("no thumbnail tier exists")
		return result, ErrNoThumbnails
	}

	logger.Infof("%d of %d tiers exist", len(result.Available()), len(result.Thumbnails))
	return result, nil
}

// check reports the observed status and whether it counts as existing.
// Network failures come back as status 0.
func (p *Prober) check(ctx context.Context, url string) (int, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	return resp.StatusCode, resp.StatusCode >= 200 && resp.StatusCode < 300
}
