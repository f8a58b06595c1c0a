// Package imagedup provides duplicate image detection for directory trees.
//
// It walks directory trees using fastwalk for parallel traversal, hashes
// image file contents with a bounded worker pool, and groups files by
// digest to report duplicates and the disk space they waste.
package imagedup
