// Package types defines the core value types shared across hilite: the
// closed set of highlight codes, the rendering modes, and the color kinds a
// palette provides.
package types
