package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckComparesVersions(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": "v1.2.0"}`)

	tests := []struct {
		current string
		want    string
	}{
		{"v1.1.0", "1.2.0"},
		{"1.1.9", "1.2.0"},
		{"0.9.0", "1.2.0"},
		{"1.2.0", ""},
		{"v1.2.0", ""},
		{"1.3.0", ""},
		{"1.10.0", ""},
		{"2.0.0", ""},
		{"dev", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := CheckURL(context.Background(), srv.Client(), srv.URL, tt.current)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("current %q: expected no update, got %+v", tt.current, got)
		case tt.want != "" && (got == nil || got.LatestVersion != tt.want):
			t.Errorf("current %q: expected update to %s, got %+v", tt.current, tt.want, got)
		}
	}
}

func TestCheckIgnoresUntaggedRelease(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": "nightly"}`)
	if got := CheckURL(context.Background(), srv.Client(), srv.URL, "1.0.0"); got != nil {
		t.Errorf("expected nil for non-semver tag, got %+v", got)
	}
}

func TestCheckErrorsAreSilent(t *testing.T) {
	tests := []struct {
		status int
		body   string
	}{
		{http.StatusNotFound, `{}`},
		{http.StatusOK, `not json`},
		{http.StatusOK, `{"tag_name": ""}`},
	}
	for _, tt := range tests {
		srv := releaseServer(t, tt.status, tt.body)
		if got := CheckURL(context.Background(), srv.Client(), srv.URL, "1.0.0"); got != nil {
			t.Errorf("status %d body %q: expected nil, got %+v", tt.status, tt.body, got)
		}
	}
}
