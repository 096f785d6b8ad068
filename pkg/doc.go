// Package pkg provides the core libraries for daybook diary generation.
//
// # Overview
//
// Daybook composes a printable full-year planner PDF from deterministic
// layout rules and free web content. The pkg directory is organized into
// five main areas:
//
//  1. [layout] - Geometry engine (text wrapping, grids, vertical flow)
//  2. [compose] - Page builders and the year-long generation driver
//  3. [sink] - Drawing surfaces (PDF output, recording test double)
//  4. [content] - External sources (quotes, inspiration, seasonal images)
//  5. [cache] - Content cache backends (file, redis, null)
//
// # Architecture
//
// The typical data flow through daybook:
//
//	Content APIs (zenquotes, loremflickr, openrouter)
//	         ↓
//	    [content] package (fetch, cache, fallback)
//	         ↓
//	    [compose] package (page geometry via [layout])
//	         ↓
//	    [sink] package (draw primitives)
//	         ↓
//	    PDF output
//
// The layout engine computes geometry only and never draws; the composer
// forwards computed coordinates to a sink. Identical inputs always yield
// an identical primitive stream, which is what the recorder sink asserts
// in tests.
//
// Supporting packages: [errors] defines the coded error taxonomy,
// [httputil] provides retry with backoff for content fetches, and
// [buildinfo] carries version metadata injected at build time.
package pkg
