package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/urbanhive/marketplace-search/api"
	"github.com/urbanhive/marketplace-search/internal/engine"
	"github.com/urbanhive/marketplace-search/internal/translate"
	"github.com/urbanhive/marketplace-search/services"
)

func main() {
	// Define command-line flags
	var (
		help         = flag.Bool("help", false, "Show help message")
		version      = flag.Bool("version", false, "Show version information")
		port         = flag.String("port", "8080", "Port to run the server on")
		dataDir      = flag.String("data-dir", "./search_data", "Directory to store listing snapshots")
		translateURL = flag.String("translate-url", "", "Translation endpoint URL (empty disables translation)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Marketplace Search - relevance search for service listings\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                   # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                       # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --translate-url http://host/xl8   # Enable query translation\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Marketplace Search v1.0.0\n")
		fmt.Printf("Category inference, broadened filtering and weighted relevance ranking\n")
		return
	}

	// Initialize the relevance engine
	log.Printf("Using data directory: %s", *dataDir)
	var translator services.Translator = translate.Noop{}
	if *translateURL != "" {
		log.Printf("Using translation endpoint: %s", *translateURL)
		translator = translate.NewClient(*translateURL)
	}

	searchEngine, err := engine.NewEngine(*dataDir, translator)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, searchEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
