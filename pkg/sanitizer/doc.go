// Package sanitizer provides input normalization for customer supplied data.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully, typically by returning
// empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Phone numbers: Convert to E.164 format (+[country][number]) for a default region
//   - Slices: Remove duplicates and empty values after normalization
package sanitizer
