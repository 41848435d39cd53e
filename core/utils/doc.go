// Package utils provides small conversion helpers.
//
// The Steam inventory API represents most numeric values as strings
// (asset IDs, amounts) and boolean flags as integers, so the helpers here
// centralize the lenient coercion used during normalization.
package utils
