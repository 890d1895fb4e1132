// Package relay models the proxy endpoints a profile request can be routed through.
// Every variant owns both its URL construction and its response unwrapping, so new
// relay kinds are added as new types rather than as branches in the fetcher.
package relay

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"github.com/tidwall/gjson"
)

// Route kinds accepted by Parse.
const (
	KindDirect  = "direct"
	KindEncoded = "encoded"
	KindRaw     = "raw"
	KindWrapped = "wrapped"
)

// wrapperField is where allorigins-style relays put the upstream body.
const wrapperField = "contents"

type Route interface {
	Name() string
	BuildURL(target string) string
	Unwrap(body []byte) ([]byte, error)
}

// DirectRoute requests the target without any relay.
type DirectRoute struct{}

func (DirectRoute) Name() string { return KindDirect }

func (DirectRoute) BuildURL(target string) string { return target }

func (DirectRoute) Unwrap(body []byte) ([]byte, error) { return passthrough(KindDirect, body) }

// EncodedRoute appends the percent-encoded target to Base and returns the body as is.
type EncodedRoute struct {
	Base string
}

func (r EncodedRoute) Name() string { return KindEncoded + ":" + r.Base }

func (r EncodedRoute) BuildURL(target string) string {
	return r.Base + url.QueryEscape(target)
}

func (r EncodedRoute) Unwrap(body []byte) ([]byte, error) { return passthrough(r.Name(), body) }

// RawRoute appends the target unmodified to Base and returns the body as is.
type RawRoute struct {
	Base string
}

func (r RawRoute) Name() string { return KindRaw + ":" + r.Base }

func (r RawRoute) BuildURL(target string) string {
	return r.Base + target
}

func (r RawRoute) Unwrap(body []byte) ([]byte, error) { return passthrough(r.Name(), body) }

// WrappedRoute appends the percent-encoded target to Base. The relay answers with
// {"contents": "<json string>"} and the inner string is the upstream document.
type WrappedRoute struct {
	Base string
}

func (r WrappedRoute) Name() string { return KindWrapped + ":" + r.Base }

func (r WrappedRoute) BuildURL(target string) string {
	return r.Base + url.QueryEscape(target)
}

func (r WrappedRoute) Unwrap(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.NewPayloadError("relay wrapper is not valid JSON", r.Name(), nil)
	}
	contents := gjson.GetBytes(body, wrapperField)
	if !contents.Exists() || contents.Type != gjson.String || contents.Str == "" {
		return nil, errors.NewPayloadError("relay wrapper has no contents", r.Name(), nil)
	}
	inner := []byte(contents.Str)
	if !gjson.ValidBytes(inner) {
		return nil, errors.NewPayloadError("relay contents is not valid JSON", r.Name(), nil)
	}
	return inner, nil
}

func passthrough(name string, body []byte) ([]byte, error) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil, errors.NewPayloadError("response body is not valid JSON", name, nil)
	}
	return body, nil
}

// Parse builds a route from "kind:base", e.g. "wrapped:https://api.allorigins.win/get?url=".
func Parse(spec string) (Route, error) {
	kind, base, _ := strings.Cut(strings.TrimSpace(spec), ":")
	kind = strings.ToLower(strings.TrimSpace(kind))
	base = strings.TrimSpace(base)

	switch kind {
	case KindDirect:
		return DirectRoute{}, nil
	case KindEncoded, KindRaw, KindWrapped:
		if base == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("relay route %q needs a base URL", kind), "relay_route", spec)
		}
		if _, err := url.Parse(base); err != nil {
			return nil, errors.NewValidationError("relay base URL is invalid", "relay_route", spec)
		}
		switch kind {
		case KindEncoded:
			return EncodedRoute{Base: base}, nil
		case KindRaw:
			return RawRoute{Base: base}, nil
		default:
			return WrappedRoute{Base: base}, nil
		}
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown relay route kind %q", kind), "relay_route", spec)
	}
}

// ParseAll parses specs in order, keeping the order as the rotation order.
func ParseAll(specs []string) ([]Route, error) {
	routes := make([]Route, 0, len(specs))
	for _, spec := range specs {
		route, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, nil
}
