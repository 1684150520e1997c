// Package artwork derives ambient two-stop gradients from cover images.
//
// A gradient is a bright dominant tone fading into a fixed dark neutral,
// used to theme the now-playing panel. Extraction is strictly best-effort:
// any decode problem yields a usable fallback gradient, never an error.
package artwork
