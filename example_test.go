package podio_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/adamwoolhether/podio"
	"github.com/adamwoolhether/podio/area"
)

func ExampleOAuthClient() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			fmt.Fprint(w, `{"access_token":"tok","expires_in":28800}`)
		case "/item/42":
			fmt.Fprint(w, `{"item_id":42,"title":"Quarterly report"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctx := context.Background()

	c, err := podio.OAuthClient(ctx, "key", "secret", "me@example.com", "pw", "example/1.0", ts.URL)
	if err != nil {
		fmt.Println("auth error:", err)
		return
	}

	out, err := c.Item().Find(ctx, 42, false, nil)
	if err != nil {
		fmt.Println("call error:", err)
		return
	}

	var item struct {
		ItemID int    `json:"item_id"`
		Title  string `json:"title"`
	}
	if err := area.Decode(out, &item); err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Println(item.ItemID, item.Title)
	// Output: 42 Quarterly report
}
