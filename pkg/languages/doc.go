// Package languages serves syllable data for named languages, either compiled
// into the binary or read from files, and caches the parsed generators.
package languages
