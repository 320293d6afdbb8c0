// Package network provides the shared HTTP client used for existence checks and downloads.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/key"
)

// Client is the HTTP client shared across the application.
// Timeout stays zero unless network.timeout is set; existence checks rely on the environment default.
var Client = &http.Client{
	Transport: &userAgentTransport{base: newTransport(), agent: constant.UserAgent},
}

// Setup applies the network.* settings to Client.
func Setup() {
	Client.Timeout = viper.GetDuration(key.NetworkTimeout)

	var base http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkChromeFingerprint) {
		base = newFingerprintTransport()
	}

	agent := viper.GetString(key.NetworkUserAgent)
	if agent == "" {
		agent = constant.UserAgent
	}

	Client.Transport = &userAgentTransport{base: base, agent: agent}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	return t
}

// userAgentTransport stamps a User-Agent on requests that do not carry one.
type userAgentTransport struct {
	base  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(clone)
}
