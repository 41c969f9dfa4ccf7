//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <schedule.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	schedulePath := args[0]
	if _, err := os.Stat(schedulePath); os.IsNotExist(err) {
		log.Fatalf("Schedule file does not exist: %s", schedulePath)
	}

	http.HandleFunc("/api/a_gpv_g", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Request: after=%q before=%q time=%q",
			r.URL.Query().Get("after"), r.URL.Query().Get("before"), r.URL.Query().Get("time"))
		serveJSONFile(w, schedulePath)
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Schedule: %s -> http://localhost%s/api/a_gpv_g", schedulePath, addr)
	log.Println("\nThe file is read on each request, so you can edit it while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveJSONFile(w http.ResponseWriter, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", "application/ld+json; charset=utf-8")
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
