// Package catalog parses the catalog numbers and album directory names that
// drive record generation.
//
// Album directories follow the layout
//
//	[2019-04-24][LACA-9675~6] Title [2 Discs]
//
// where the date separators are optional, the year may have two digits, and
// the disc suffix is omitted for single-disc releases. A catalog may name a
// range of consecutive numbers with "~", one per disc.
package catalog
