package middleware

import (
	"net/http"

	"latina/shared/constant"
	"latina/shared/locale"
)

// Locale routes every page request through resolver. Prefixed paths go on
// with their locale in the context, unprefixed paths are redirected and
// unsupported locale prefixes are answered by notFound. When detect is set,
// redirects honour Accept-Language instead of always using the fallback.
func Locale(resolver locale.Resolver, detect bool, notFound http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target := resolver.Fallback
			if detect {
				target = locale.Detect(r.Header.Get(constant.RequestHeaderAcceptLanguage), resolver.Fallback)
			}

			res := resolver.Resolve(r.URL.Path, target)

			switch res.Outcome {
			case locale.Serve:
				next.ServeHTTP(w, r.WithContext(locale.NewContext(r.Context(), res.Locale)))
			case locale.Redirect:
				location := res.Location
				if r.URL.RawQuery != "" {
					location += "?" + r.URL.RawQuery
				}

				if detect {
					w.Header().Add(constant.RequestHeaderVary, constant.RequestHeaderAcceptLanguage)
				}

				http.Redirect(w, r, location, http.StatusTemporaryRedirect)
			case locale.NotFound:
				notFound.ServeHTTP(w, r.WithContext(locale.NewContext(r.Context(), resolver.Fallback)))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
