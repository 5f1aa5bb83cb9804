package server

import (
	"context"
	"net/http"
	"testing"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":       ":8080",
		"9090":   ":9090",
		":9090":  ":9090",
		" 7000 ": ":7000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestNewHTTPServer(t *testing.T) {
	srv := newHTTPServer(":1234", http.NotFoundHandler())
	if srv.Addr != ":1234" || srv.WriteTimeout != writeTimeout || srv.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("unexpected server config: %+v", srv)
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	var s Server
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
