// Package cache wraps a redis client for short-lived catalog response caching.
//
// Values are opaque bytes; the catalog package decides the encoding. A miss
// is reported as ErrMiss so callers can tell it apart from connectivity errors.
package cache
