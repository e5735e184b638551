// Package fixture holds enumerations keyed by generated contracts. The
// *_arraymap.go files are produced by arraymapgen and double as golden files
// for the generator tests.
package fixture
