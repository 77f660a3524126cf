package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matheuskafuri/wikiscroll/internal/wiki"
)

func resetFlags() {
	flagLang = ""
	flagConfig = ""
	flagLogFile = ""
	flagMetricsAddr = ""
	flagCount = 0
	flagJSON = false
	flagCheck = false
}

func TestLoadConfigLangOverride(t *testing.T) {
	tests := []struct {
		flag string
		want wiki.Language
		err  bool
	}{
		{"", wiki.Korean, false},
		{"en", wiki.English, false},
		{" KO ", wiki.Korean, false},
		{"ja", "", true},
	}

	for _, tt := range tests {
		resetFlags()
		t.Setenv("WIKISCROLL_LANG", "")
		flagConfig = filepath.Join(t.TempDir(), "config.yaml")
		flagLang = tt.flag

		cfg, err := loadConfig()
		if tt.err {
			if err == nil {
				t.Errorf("loadConfig with --lang %q: expected error", tt.flag)
			}
			continue
		}
		if err != nil {
			t.Errorf("loadConfig with --lang %q: %v", tt.flag, err)
			continue
		}
		if got := cfg.Lang(); got != tt.want {
			t.Errorf("loadConfig with --lang %q: lang = %q, want %q", tt.flag, got, tt.want)
		}
	}
	resetFlags()
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is longer", 10, "this is..."},
		{"한국어 문장입니다", 6, "한국어..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestPrintSummaries(t *testing.T) {
	items := []wiki.Summary{
		{ID: 1, Title: "Seoul", Description: "Capital of South Korea", Extract: "Seoul is a city.",
			MobileURL: "https://en.m.wikipedia.org/wiki/Seoul", DesktopURL: "https://en.wikipedia.org/wiki/Seoul", Lang: wiki.English},
		{ID: 2, Title: "김치", Extract: "김치는 음식이다.", DesktopURL: "https://ko.wikipedia.org/wiki/김치", Lang: wiki.Korean},
	}

	var buf bytes.Buffer
	printSummaries(&buf, items, wiki.LinkMobile)
	out := buf.String()

	for _, want := range []string{
		"[en] Seoul",
		"Capital of South Korea",
		"https://en.m.wikipedia.org/wiki/Seoul",
		"[ko] 김치",
		"https://ko.wikipedia.org/wiki/김치",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRandomCommandJSON(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"pageid":%d,"title":"Article %d","extract":"text","content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/A%d"},"mobile":{"page":"https://en.m.wikipedia.org/wiki/A%d"}}}`, n, n, n, n)
	}))
	defer srv.Close()

	resetFlags()
	defer resetFlags()
	t.Setenv("WIKISCROLL_ENDPOINT", srv.URL)
	t.Setenv("WIKISCROLL_LANG", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"random", "-n", "3", "--lang", "en", "--json",
		"--config", filepath.Join(t.TempDir(), "config.yaml")})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("random: %v", err)
	}

	var items []wiki.Summary
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out.String())
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
	for _, it := range items {
		if it.Lang != wiki.English {
			t.Errorf("item %d lang = %q, want en", it.ID, it.Lang)
		}
	}
}
