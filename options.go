package html5kit

import (
	"github.com/cmoore/html5kit/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding          string
	fragmentContext   *treebuilder.FragmentContext
	iframeSrcdoc      bool
	strict            bool
	collectErrors     bool
	xmlCoercion       bool
	maxBuf            int
	scriptingDisabled bool
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithXMLCoercion enables XML output coercions used by some test suites:
// form feeds become spaces in text tokens, some non-XML characters become
// U+FFFD, and comments replace "--" with "- -".
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithMaxBuf caps the number of runes a single token's raw span may grow to
// before parsing fails with a BufferExceeded error. Zero (the default)
// means unbounded.
func WithMaxBuf(n int) Option {
	return func(c *config) {
		c.maxBuf = n
	}
}

// WithScriptingDisabled turns off the HTML5 scripting flag. With scripting
// disabled, a <noscript> element's children are parsed as ordinary markup
// instead of raw text, matching how a browser with JavaScript turned off
// would treat the page.
func WithScriptingDisabled() Option {
	return func(c *config) {
		c.scriptingDisabled = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}
