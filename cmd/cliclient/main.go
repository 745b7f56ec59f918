package main

import (
	"context"
	"log"
	"os"
)

const serverURL = "ws://localhost:8080"

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(context.Background(), serverURL, os.Stdout); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
