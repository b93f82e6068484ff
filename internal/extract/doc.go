// Package extract implements the FNOL field-extraction pipeline: text
// normalisation, label-anchored pattern search over two text views,
// placeholder and noise rejection, and per-field validation.
//
// The label and pattern lists are versioned configuration data embedded
// from patterns.toml and compiled once at package init. Extraction is a
// pure function of the input text: the same text always yields the same
// result, and an uncertain field is omitted rather than guessed.
package extract
