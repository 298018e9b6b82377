package utils

import "net/url"

// ResolveURL resolves ref against base the way a browser resolves an img src.
// ref is returned untouched when either side cannot be parsed, and an empty ref
// stays empty instead of pointing back at the page.
func ResolveURL(base *url.URL, ref string) string {
	if base == nil || ref == "" {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
