// Package importer turns raw markdown into a ParsedDocument ready to be stored
// as an article: title, excerpt, video references, a coarse content-type label
// and an estimated read time. Everything here is pure and safe for concurrent
// use; Parse and Validate never fail.
package importer
