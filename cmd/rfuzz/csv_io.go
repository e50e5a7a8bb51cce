package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

type pairRecord struct {
	Left  string `csv:"left"`
	Right string `csv:"right"`
}

type scoreRecord struct {
	Left         string `csv:"left"`
	Right        string `csv:"right"`
	Gram         string `csv:"gram"`
	Ratio        string `csv:"ratio"`
	PartialRatio string `csv:"partial_ratio"`
}

type documentRecord struct {
	ID   string `csv:"id"`
	Text string `csv:"text"`
	Meta string `csv:"meta"`
}

// openInput opens path for reading; "-" reads from fallback.
func openInput(path string, fallback io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(fallback), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readCSV decodes every record of path into a slice of T.
func readCSV[T any](path string, fallback io.Reader) ([]*T, error) {
	r, err := openInput(path, fallback)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	records := make([]*T, 0)
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", displayName(path), err)
	}
	return records, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// optional maps an empty CSV cell to a missing value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
