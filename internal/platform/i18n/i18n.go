// Package i18n provides message bundles for player-facing text.
//
// Bundles are read-only after construction. Lookups are best-effort: a
// missing key falls back to caller-provided text and a malformed inline
// template degrades to an empty string, so display code never fails hard.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Bundle resolves message keys for a single locale.
type Bundle struct {
	printer *message.Printer
	keys    map[string]struct{}
}

// New builds a bundle for the given locale from a key-to-message map.
func New(tag language.Tag, messages map[string]string) *Bundle {
	builder := catalog.NewBuilder(catalog.Fallback(tag))
	keys := make(map[string]struct{}, len(messages))
	for key, msg := range messages {
		if err := builder.SetString(tag, key, msg); err != nil {
			continue
		}
		keys[key] = struct{}{}
	}
	return &Bundle{
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		keys:    keys,
	}
}

var defaultBundle = New(language.AmericanEnglish, builtinMessages)

// Default returns the process-wide en-US bundle.
func Default() *Bundle {
	return defaultBundle
}

// Get returns the message registered under key, or fallback when the key is
// unknown.
func (b *Bundle) Get(key, fallback string) string {
	if b == nil {
		return fallback
	}
	if _, ok := b.keys[key]; !ok {
		return fallback
	}
	return b.printer.Sprintf(key)
}

// Format renders the message registered under key with args. Unknown keys
// degrade to the key itself so callers always receive a display string.
func (b *Bundle) Format(key string, args ...any) string {
	if b == nil {
		return key
	}
	if _, ok := b.keys[key]; !ok {
		return key
	}
	return b.printer.Sprintf(key, args...)
}

// FormatString renders an inline template that is not part of the catalog,
// such as author-supplied objective text. A template whose verbs do not
// match the supplied arguments yields an empty string.
func (b *Bundle) FormatString(template string, args ...any) string {
	out := fmt.Sprintf(template, args...)
	if strings.Contains(out, "%!") {
		return ""
	}
	return out
}
