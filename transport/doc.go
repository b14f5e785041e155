// Package transport turns chained path segments into calls against the
// Podio REST API.
//
// # Building a Transport
//
// Use [Build] with functional options:
//
//	t, err := transport.Build(
//		transport.WithHeaders(header.Build(authorizer, "myapp/1.0")),
//		transport.WithTimeout(30*time.Second),
//		transport.WithThrottle(throttle.PerHour(throttle.StandardPerHour, 10)),
//	)
//
// # Making Calls
//
// Accumulate path segments, optionally select a method, then [Transport.Call]:
//
//	item, err := t.Path("item").Call(ctx, nil, 42)
//
//	created, err := t.POST().Path("item", "app", 7).Call(ctx, transport.Params{
//		transport.KeyType: transport.ContentTypeJSON,
//		transport.KeyBody: `{"fields":[]}`,
//	})
//
// POST and PUT calls without [KeyType] send their parameters as a JSON
// object. Other methods send them as the query string.
//
// # Responses
//
// Responses with a status of 400 or above fail with a [*TransportError].
// Successful bodies are decoded as JSON unless a [Handler] is passed
// under [KeyHandler]; [Raw] and [ToFile] cover binary downloads.
package transport
