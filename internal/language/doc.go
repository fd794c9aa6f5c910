// Package language provides language code validation, de-duplication, and
// display names for transcript preference lists.
//
// Codes are handled exactly as the captioning service reports them
// ("pt", "pt-BR", "zh-Hans"): helpers here never rewrite a code's case or
// region, because transcript selection matches codes byte-for-byte. Display
// names come from a small curated table with golang.org/x/text as fallback.
package language
