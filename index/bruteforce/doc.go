// Package bruteforce implements index.Index by scoring every candidate.
package bruteforce
