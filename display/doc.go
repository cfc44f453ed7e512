// Package display picks a display mode from a catalog of supported ones.
//
// The catalog comes from the platform layer or from a YAML or TOML file:
//
//	modes:
//	  - adapter: 0
//	    width: 1920
//	    height: 1080
//	    fullscreen: true
//	    bit_depth: 32
//	    refresh_rate: 60
//
// Catalog.Find returns the entry nearest to a request, or false when
// nothing is large enough.
package display
