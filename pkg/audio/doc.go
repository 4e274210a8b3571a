// Package audio holds the generic stream types shared between the backend
// and its callers: sample formats, stream configurations and configuration
// ranges, the transient sample-buffer view handed to data callbacks, stream
// timestamps, and the stream error taxonomy.
//
// The package is deliberately free of any native or platform dependency so
// that callers can consume device capabilities and build configurations
// without linking against a concrete audio backend.
package audio
