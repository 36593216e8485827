//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	extractedJSON = filepath.Join("output", "extracted.json")
	itineraryJSON = filepath.Join("output", "itinerary.json")
)

// Extract runs the extractor on pdf and writes output/extracted.json.
func Extract(pdf string) error {
	mg.Deps(Build, Init)
	out, err := sh.Output(filepath.Join(binDir, "extractor"), pdf)
	if err != nil {
		return fmt.Errorf("extractor %s: %w", pdf, err)
	}
	if err := os.WriteFile(extractedJSON, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", extractedJSON, err)
	}
	fmt.Printf("Wrote %s\n", extractedJSON)
	return nil
}

// Itinerary parses output/extracted.json into output/itinerary.json.
func Itinerary() error {
	mg.Deps(Build, Init)
	out, err := sh.Output(filepath.Join(binDir, "itinerary-parser"), extractedJSON)
	if err != nil {
		return fmt.Errorf("itinerary-parser %s: %w", extractedJSON, err)
	}
	if err := os.WriteFile(itineraryJSON, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", itineraryJSON, err)
	}
	fmt.Printf("Wrote %s\n", itineraryJSON)
	return nil
}

// Pipeline extracts pdf and parses the result in one go.
func Pipeline(pdf string) error {
	if err := Extract(pdf); err != nil {
		return err
	}
	return Itinerary()
}
