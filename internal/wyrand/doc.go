// Package wyrand provides a small deterministic random source built on the
// wyhash mixing function, and helpers that draw random leaf values from it.
//
// It exists for property tests: a [Source] seeded from a test name yields
// the same sequence on every run and every platform.
package wyrand
