package locale

import (
	"context"

	"latina/shared/constant"
)

// NewContext returns a copy of ctx that carries loc.
func NewContext(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, constant.ContextKeyLocale, loc)
}

// FromContext returns the locale stored in ctx, or Default when there is none.
func FromContext(ctx context.Context) Locale {
	if loc, ok := ctx.Value(constant.ContextKeyLocale).(Locale); ok {
		return loc
	}

	return Default
}
