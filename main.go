// Main entry point for the application
package main

import (
	"log"
	"os"

	"path2peace/internal/ui"
)

func main() {
	// Set the logger prefix
	log.SetPrefix("path2peace: ")

	if err := ui.CreateApplication(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
