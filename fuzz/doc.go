// Package fuzz scores the similarity of two strings using character-bigram
// cosine similarity.
//
// Each string is turned into a padded bigram sequence: a boundary bigram
// (Pad, first), every adjacent character pair, and a boundary bigram
// (last, Pad). Two sequences are compared by counting each bigram of their
// joint vocabulary and taking the cosine of the resulting frequency vectors.
//
// Three entry points share that core:
//   - Gram compares both strings in full.
//   - Ratio is Gram under the name ratio-style APIs expect. The two always
//     return the same value.
//   - PartialRatio slides a window the length of the shorter string across
//     the longer one and keeps the best alignment, stopping at the first
//     perfect window.
//
// All functions work on characters (runes), never bytes, hold no package
// state, and are safe for concurrent use. An empty argument scores 0 and
// identical arguments score 1.
package fuzz
