// Package cpre implements an in-memory, language-agnostic text preprocessor
// in the style of the C preprocessor. Callers supply a set of named sources
// and a Config; Run rewrites directive lines (#include, #if/#ifdef/#ifndef/
// #elif/#else/#endif, #define, #undef, #error, #pragma once) and expands
// __NAME__-style macro references, returning the rewritten sources.
//
// The package does no filesystem or network I/O; every source it can see
// must already be present in the Config's source map.
package cpre
