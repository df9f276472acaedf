package core

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/aduh95/corepack/internal/policies"
	"github.com/aduh95/corepack/internal/types"
)

// ParseSpecOptions controls how strict ParseSpec is about the part
// after the "@".
type ParseSpecOptions struct {
	// EnforceExactVersion requires a single concrete version. Ranges,
	// tags, and bare manager names are rejected. Pinning paths want
	// this; resolution paths accept the looser forms.
	EnforceExactVersion bool
}

// ParseSpec turns a raw "name", "name@version", "name@range", or
// "name@url" string into a Descriptor. source names the file or
// argument the value came from and only shows up in error messages.
func ParseSpec(raw string, source string, opts ParseSpecOptions) (types.Descriptor, error) {
	at := strings.Index(raw, "@")
	if at == -1 || at == len(raw)-1 {
		if opts.EnforceExactVersion {
			return types.Descriptor{}, errMissingVersion(raw, source)
		}
		name := strings.TrimSuffix(raw, "@")
		if !policies.IsSupported(name) {
			return types.Descriptor{}, errUnsupportedManager(name)
		}
		return types.Descriptor{Name: name, Range: types.WildcardRange}, nil
	}

	name := raw[:at]
	rng := raw[at+1:]

	if isAbsoluteURL(rng) {
		if policies.IsSupported(name) && !policies.UnsafeCustomURLsEnabled() {
			return types.Descriptor{}, errUnsafeCustomURL(raw)
		}
		return types.Descriptor{Name: name, Range: rng}, nil
	}
	if opts.EnforceExactVersion && !validExactVersion(rng) {
		return types.Descriptor{}, errInvalidVersion(raw, source)
	}
	if !policies.IsSupported(name) {
		return types.Descriptor{}, errUnsupportedManager(raw)
	}
	return types.Descriptor{Name: name, Range: rng}, nil
}

// ParseRawSpec decodes a manifest-sourced JSON value and parses it.
// Any non-string value is a type error naming its source, including
// objects shaped like structured declarations.
func ParseRawSpec(raw json.RawMessage, source string, opts ParseSpecOptions) (types.Descriptor, error) {
	value, err := specString(raw, source)
	if err != nil {
		return types.Descriptor{}, err
	}
	return ParseSpec(value, source, opts)
}

func specString(raw json.RawMessage, source string) (string, error) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", errInvalidSpecType(source)
	}
	return value, nil
}

// isAbsoluteURL mirrors WHATWG URL parsing: any value carrying a valid
// scheme counts, so opaque forms like "npm:foo" select custom managers
// too.
func isAbsoluteURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && parsed.IsAbs()
}
