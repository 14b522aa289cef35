// Package html5kit provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// html5kit is a complete HTML5 parser that handles malformed HTML exactly as browsers do.
// It passes all 9,000+ tests in the official html5lib-tests suite.
//
// # Basic Usage
//
//	doc, err := html5kit.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	for _, p := range doc.Query("p") {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - 100% HTML5 compliant (WHATWG Living Standard)
//   - Zero dependencies (Go stdlib only)
//   - CSS selector support
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/cmoore/html5kit
package html5kit

import (
	"github.com/cmoore/html5kit/dom"
	"github.com/cmoore/html5kit/encoding"
	htmlerrors "github.com/cmoore/html5kit/errors"
	// Blank-imported for its init(), which registers the CSS selector
	// engine against dom's Query/QueryFirst injection points. Without
	// this, Document.Query and Element.Query silently return nothing.
	_ "github.com/cmoore/html5kit/selector"
	"github.com/cmoore/html5kit/tokenizer"
	"github.com/cmoore/html5kit/treebuilder"
)

// Version is the current version of html5kit.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := html5kit.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is chosen in this order:
//  1. HTTP Content-Type header (if provided via WithEncoding and recognized)
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := html5kit.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}
	_ = enc // TODO: store detected encoding in document

	return parse(decoded, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := html5kit.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: "html",
	}
	return parseFragment(html, cfg)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	if cfg.maxBuf > 0 {
		tok.SetMaxBuf(cfg.maxBuf)
	}
	tb := treebuilder.New(tok)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.scriptingDisabled {
		tb.SetScripting(false)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.Document(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.Document(), nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	if cfg.maxBuf > 0 {
		tok.SetMaxBuf(cfg.maxBuf)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.scriptingDisabled {
		tb.SetScripting(false)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
