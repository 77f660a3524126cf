package browser

import (
	"errors"
	"testing"
)

func TestOpenWithRejectsNonHTTP(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://ko.m.wikipedia.org/wiki/설악산", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		called := false
		err := OpenWith(func(name string, args ...string) error {
			called = true
			return nil
		}, tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("OpenWith(%q): expected error, got nil", tt.url)
			}
			if called {
				t.Errorf("OpenWith(%q): launcher must not run for rejected URLs", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("OpenWith(%q): unexpected error %v", tt.url, err)
		}
		if !called {
			t.Errorf("OpenWith(%q): launcher was not called", tt.url)
		}
	}
}

func TestOpenWithLauncherError(t *testing.T) {
	err := OpenWith(func(string, ...string) error { return errors.New("not found") }, "https://example.com")
	if err == nil {
		t.Error("expected launcher error to be returned")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs int
	}{
		{"darwin", "open", 1},
		{"linux", "xdg-open", 1},
		{"freebsd", "xdg-open", 1},
		{"windows", "rundll32", 2},
	}
	for _, tt := range tests {
		name, args := command(tt.goos, "https://example.com")
		if name != tt.wantName || len(args) != tt.wantArgs {
			t.Errorf("command(%s) = %s %v, want %s with %d args", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
		if args[len(args)-1] != "https://example.com" {
			t.Errorf("command(%s): URL must be the last argument, got %v", tt.goos, args)
		}
	}
}
