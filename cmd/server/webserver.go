package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marben/mandelbench/remote"
)

// webServer creates the http server exposing the render and benchmark
// websocket endpoints.
func webServer(port, workers int) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           remote.NewService(workers).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}
