package utils

import (
	"net/url"
	"testing"
)

func TestResolveURL(t *testing.T) {
	base, _ := url.Parse("https://carma.com.au/buy/cars?page=1")

	testCases := []struct {
		ref  string
		want string
	}{
		{"https://cdn.carma.com.au/a.jpg", "https://cdn.carma.com.au/a.jpg"},
		{"/images/a.jpg", "https://carma.com.au/images/a.jpg"},
		{"a.jpg", "https://carma.com.au/buy/a.jpg"},
		{"//cdn.example.com/b.jpg", "https://cdn.example.com/b.jpg"},
	}
	for _, tc := range testCases {
		if got := ResolveURL(base, tc.ref); got != tc.want {
			t.Errorf("ResolveURL(%q) = %q, want %q", tc.ref, got, tc.want)
		}
	}

	if got := ResolveURL(base, ""); got != "" {
		t.Errorf("empty ref: got %q, want empty", got)
	}
	if got := ResolveURL(nil, "a.jpg"); got != "a.jpg" {
		t.Errorf("nil base: got %q", got)
	}
}
