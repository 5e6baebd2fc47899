// Package conv provides safe integer type conversion utilities.
//
// Use them where a value comes from outside the process (model files,
// capacities passed by callers) and must fit a fixed-width field.
// Conversions that are provably safe by construction use plain casts.
package conv
