package locale

import (
	"path"
	"strings"
)

type Outcome int

const (
	// Bypass marks paths that are not subject to locale routing.
	Bypass Outcome = iota + 1
	// Serve means the path is already prefixed with a supported locale.
	Serve
	// Redirect means the path has no locale prefix and must be sent to
	// Resolution.Location.
	Redirect
	// NotFound means the first segment looks like a locale but is not one
	// we serve.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Bypass:
		return "bypass"
	case Serve:
		return "serve"
	case Redirect:
		return "redirect"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Resolution struct {
	Outcome  Outcome
	Locale   Locale
	Route    string // logical route without the locale prefix, always starting with "/"
	Location string // redirect target, only set for Redirect
}

// Resolver decides, from the request path alone, which locale a request is
// served in.
type Resolver struct {
	Fallback         Locale
	ExcludedPrefixes []string
}

// DefaultExcludedPrefixes are the path classes that never carry a locale.
var DefaultExcludedPrefixes = []string{"/api", "/static", "/swagger", "/health"}

func NewResolver(fallback Locale, excluded ...string) Resolver {
	if _, ok := Parse(fallback.String()); !ok {
		fallback = Default
	}

	if len(excluded) == 0 {
		excluded = DefaultExcludedPrefixes
	}

	return Resolver{
		Fallback:         fallback,
		ExcludedPrefixes: excluded,
	}
}

// Resolve classifies urlPath. target is the locale used for redirects; an
// empty target means the resolver's fallback.
func (r Resolver) Resolve(urlPath string, target Locale) Resolution {
	if urlPath == "" {
		urlPath = "/"
	}

	if r.excluded(urlPath) {
		return Resolution{Outcome: Bypass, Route: urlPath}
	}

	trimmed := strings.TrimPrefix(urlPath, "/")
	first, rest, hasRest := strings.Cut(trimmed, "/")

	if loc, ok := Parse(first); ok {
		route := "/"
		if hasRest {
			route = "/" + rest
		}

		return Resolution{Outcome: Serve, Locale: loc, Route: route}
	}

	if first != "" && plausible.MatchString(first) {
		return Resolution{Outcome: NotFound, Route: urlPath}
	}

	if target == "" {
		target = r.Fallback
	}

	return Resolution{
		Outcome:  Redirect,
		Locale:   target,
		Route:    urlPath,
		Location: "/" + target.String() + urlPath,
	}
}

func (r Resolver) excluded(urlPath string) bool {
	for _, prefix := range r.ExcludedPrefixes {
		if urlPath == prefix || strings.HasPrefix(urlPath, prefix+"/") {
			return true
		}
	}

	// Anything whose last segment has an extension is a file, not a page.
	return strings.Contains(path.Base(urlPath), ".")
}
