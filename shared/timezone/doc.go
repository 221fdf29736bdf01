// Package timezone pins every calendar computation of the site to the
// restaurant's timezone.
//
// Usage:
//
//	now := timezone.Now()                                    // current time in the app timezone
//	today := timezone.StartOfDay(now)                        // midnight of the current day
//	d, err := timezone.ParseDate(date, timezone.GetLocation()) // YYYY-MM-DD at midnight
//
// The zone comes from APP_TIMEZONE (default Europe/Lisbon) and is loaded when
// the package is imported. Unknown names fall back to UTC with an error log.
package timezone
