package network

import (
	"crypto/x509"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/net/http2"
)

// tlsServer starts a TLS server, speaking HTTP/2 when h2 is set.
func tlsServer(h2 bool, handler http.HandlerFunc) *httptest.Server {
	server := httptest.NewUnstartedServer(handler)
	server.EnableHTTP2 = h2
	server.StartTLS()
	return server
}

func trusting(server *httptest.Server) *fingerprintTransport {
	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())

	t := newFingerprintTransport()
	t.roots = pool
	return t
}

func head(client *http.Client, url string) (string, error) {
	req, _ := http.NewRequest(http.MethodHead, url, nil)
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	resp.Body.Close()
	return resp.Proto, nil
}

func TestFingerprintTransport(t *testing.T) {
	for _, tc := range []struct {
		name  string
		h2    bool
		proto string
		alpn  string
	}{
		{"an HTTP/2 server", true, "HTTP/2.0", http2.NextProtoTLS},
		{"an HTTP/1.1 server", false, "HTTP/1.1", "http/1.1"},
	} {
		Convey("Given "+tc.name, t, func() {
			var hits atomic.Int32
			var seen atomic.Value

			server := tlsServer(tc.h2, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				seen.Store(r.Proto)
			})
			defer server.Close()

			transport := trusting(server)
			client := &http.Client{Transport: transport}

			Convey("The protocol comes from the first handshake", func() {
				proto, err := head(client, server.URL+"/vi/dQw4w9WgXcQ/default.jpg")
				So(err, ShouldBeNil)
				So(proto, ShouldEqual, tc.proto)
				So(seen.Load(), ShouldEqual, tc.proto)
				So(hits.Load(), ShouldEqual, 1)

				addr := strings.TrimPrefix(server.URL, "https://")
				negotiated, ok := transport.negotiated.Load(addr)
				So(ok, ShouldBeTrue)
				So(negotiated, ShouldEqual, tc.alpn)

				Convey("Later requests reuse the remembered protocol", func() {
					proto, err := head(client, server.URL+"/vi/dQw4w9WgXcQ/hqdefault.jpg")
					So(err, ShouldBeNil)
					So(proto, ShouldEqual, tc.proto)
					So(hits.Load(), ShouldEqual, 2)
				})
			})
		})

		Convey("Given "+tc.name+" that drops the request", t, func() {
			var hits atomic.Int32

			server := tlsServer(tc.h2, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				panic(http.ErrAbortHandler)
			})
			defer server.Close()

			client := &http.Client{Transport: trusting(server)}

			Convey("The request fails after a single attempt", func() {
				_, err := head(client, server.URL+"/vi/dQw4w9WgXcQ/default.jpg")
				So(err, ShouldNotBeNil)
				So(hits.Load(), ShouldEqual, 1)
			})
		})
	}
}

func TestHandoff(t *testing.T) {
	Convey("A handed-off connection serves one dial only", t, func() {
		server := tlsServer(false, func(http.ResponseWriter, *http.Request) {})
		defer server.Close()

		transport := trusting(server)
		conn, proto, err := transport.dial(t.Context(), "tcp", strings.TrimPrefix(server.URL, "https://"))
		So(err, ShouldBeNil)
		So(proto, ShouldEqual, "http/1.1")

		dial := handoff(conn).DialTLSContext
		first, err := dial(t.Context(), "tcp", "")
		So(err, ShouldBeNil)
		So(first, ShouldEqual, conn)

		_, err = dial(t.Context(), "tcp", "")
		So(err, ShouldEqual, errConnUsed)
		first.Close()
	})
}
