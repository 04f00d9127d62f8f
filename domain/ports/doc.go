// Package ports defines the raw host boundary the SDK is written against.
// The wasm adapter implements these interfaces with host imports; the
// reference host implements them in pure Go so autosplitters can be tested
// without a wasm runtime.
package ports
