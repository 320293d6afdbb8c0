package network

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/thumbgrab/thumbgrab/log"
	"golang.org/x/net/http2"
)

const (
	dialTimeout = 30 * time.Second
	idleTimeout = 30 * time.Second
)

// fingerprintTransport negotiates TLS with Chrome's client hello.
//
// The first request to a host dials once and speaks whatever protocol the
// server picked through ALPN on that handshake. The choice is remembered per
// host, so later requests go straight to the pooled transport for it.
// A request is sent at most once.
type fingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport

	// negotiated maps host:port to the ALPN protocol the server picked.
	negotiated sync.Map
	// roots overrides the system pool. Nil outside tests.
	roots *x509.CertPool
}

func newFingerprintTransport() *fingerprintTransport {
	t := &fingerprintTransport{}

	t.h2 = &http2.Transport{
		IdleConnTimeout: idleTimeout,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			conn, _, err := t.dial(ctx, network, addr)
			return conn, err
		},
	}
	t.h1 = &http.Transport{
		IdleConnTimeout: idleTimeout,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, _, err := t.dial(ctx, network, addr)
			return conn, err
		},
	}

	return t
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	addr := hostPort(req)
	if proto, ok := t.negotiated.Load(addr); ok {
		if proto == http2.NextProtoTLS {
			return t.h2.RoundTrip(req)
		}
		return t.h1.RoundTrip(req)
	}

	conn, proto, err := t.dial(req.Context(), "tcp", addr)
	if err != nil {
		return nil, err
	}

	t.negotiated.Store(addr, proto)
	log.Debugf("%s negotiated %q", addr, proto)

	if proto == http2.NextProtoTLS {
		cc, err := t.h2.NewClientConn(conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return cc.RoundTrip(req)
	}

	return handoff(conn).RoundTrip(req)
}

// dial performs one Chrome-fingerprinted handshake and reports the negotiated protocol.
func (t *fingerprintTransport) dial(ctx context.Context, network, addr string) (net.Conn, string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, "", err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		RootCAs:    t.roots,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, tlsConn.ConnectionState().NegotiatedProtocol, nil
}

var errConnUsed = errors.New("handed-off connection already used")

// handoff wraps an established HTTP/1.1 connection in a transport that
// serves exactly one request over it and then closes it.
func handoff(conn net.Conn) *http.Transport {
	var once sync.Once
	return &http.Transport{
		DisableKeepAlives: true,
		DialTLSContext: func(context.Context, string, string) (net.Conn, error) {
			var c net.Conn
			once.Do(func() { c = conn })
			if c == nil {
				return nil, errConnUsed
			}
			return c, nil
		},
	}
}

func hostPort(req *http.Request) string {
	if port := req.URL.Port(); port != "" {
		return req.URL.Host
	}
	return net.JoinHostPort(req.URL.Hostname(), "443")
}
