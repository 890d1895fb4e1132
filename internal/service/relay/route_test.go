package relay

import (
	"testing"

	"github.com/kttyan/genshin-build-viewer/pkg/errors"
)

const target = "https://enka.network/api/uid/801630705?t=1700000000000"

func TestBuildURL(t *testing.T) {
	cases := []struct {
		name  string
		route Route
		want  string
	}{
		{name: "direct", route: DirectRoute{}, want: target},
		{name: "encoded", route: EncodedRoute{Base: "https://corsproxy.io/?url="}, want: "https://corsproxy.io/?url=https%3A%2F%2Fenka.network%2Fapi%2Fuid%2F801630705%3Ft%3D1700000000000"},
		{name: "raw", route: RawRoute{Base: "https://relay.example/fetch/"}, want: "https://relay.example/fetch/" + target},
		{name: "wrapped", route: WrappedRoute{Base: "https://api.allorigins.win/get?url="}, want: "https://api.allorigins.win/get?url=https%3A%2F%2Fenka.network%2Fapi%2Fuid%2F801630705%3Ft%3D1700000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.route.BuildURL(target); got != tc.want {
				t.Fatalf("BuildURL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrappedRouteUnwrap(t *testing.T) {
	route := WrappedRoute{Base: "https://api.allorigins.win/get?url="}

	inner, err := route.Unwrap([]byte(`{"contents":"{\"uid\":\"801630705\"}","status":{"http_code":200}}`))
	if err != nil {
		t.Fatalf("Unwrap() error = %v", err)
	}
	if string(inner) != `{"uid":"801630705"}` {
		t.Fatalf("unexpected inner document: %s", inner)
	}

	failures := map[string]string{
		"missing field": `{"status":{"http_code":200}}`,
		"empty field":   `{"contents":""}`,
		"null field":    `{"contents":null}`,
		"invalid inner": `{"contents":"<html>rate limited</html>"}`,
		"invalid outer": `not json`,
		"non string":    `{"contents":{"uid":"1"}}`,
	}
	for name, body := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := route.Unwrap([]byte(body))
			if errors.CodeOf(err) != errors.CodePayload {
				t.Fatalf("expected payload error, got %v", err)
			}
		})
	}
}

func TestPassthroughRoutesRejectInvalidBody(t *testing.T) {
	for _, route := range []Route{DirectRoute{}, EncodedRoute{Base: "b"}, RawRoute{Base: "b"}} {
		if _, err := route.Unwrap(nil); errors.CodeOf(err) != errors.CodePayload {
			t.Fatalf("%s: expected payload error for empty body, got %v", route.Name(), err)
		}
		body, err := route.Unwrap([]byte(`{"playerInfo":{}}`))
		if err != nil || string(body) != `{"playerInfo":{}}` {
			t.Fatalf("%s: body should pass through unchanged, got %s (%v)", route.Name(), body, err)
		}
	}
}

func TestParse(t *testing.T) {
	routes, err := ParseAll([]string{
		"encoded:https://corsproxy.io/?url=",
		"WRAPPED:https://api.allorigins.win/get?url=",
		"raw:https://relay.example/fetch/",
		"direct:",
	})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(routes) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(routes))
	}
	if _, ok := routes[0].(EncodedRoute); !ok {
		t.Fatalf("route 0 should be EncodedRoute, got %T", routes[0])
	}
	if r, ok := routes[1].(WrappedRoute); !ok || r.Base != "https://api.allorigins.win/get?url=" {
		t.Fatalf("route 1 should be WrappedRoute with base, got %#v", routes[1])
	}
	if _, ok := routes[2].(RawRoute); !ok {
		t.Fatalf("route 2 should be RawRoute, got %T", routes[2])
	}
	if _, ok := routes[3].(DirectRoute); !ok {
		t.Fatalf("route 3 should be DirectRoute, got %T", routes[3])
	}

	for _, bad := range []string{"encoded:", "teleport:https://x", ""} {
		if _, err := Parse(bad); errors.CodeOf(err) != errors.CodeValidation {
			t.Fatalf("Parse(%q) expected validation error, got %v", bad, err)
		}
	}
}
