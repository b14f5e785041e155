// Package throttle keeps a client under the API's call quota by
// wrapping an [http.RoundTripper] with a token bucket from
// [golang.org/x/time/rate].
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.PerHour(throttle.StandardPerHour, 10),
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//
// Calls over the limit block until a token frees up or the request
// context ends.
package throttle
