package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/cranemast/seo/pkg/seo/catalog/sqlite"
	"github.com/cranemast/seo/pkg/seo/linkgraph"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "Path to sqlite catalog (or SEO_CATALOG_DB env)")
		envFile = flag.String("env", ".env", "Env file with SEO_CATALOG_DB")
		source  = flag.String("url", "", "Source page URL; empty suggests for every page")
		limit   = flag.Int("limit", linkgraph.DefaultLimit, "Maximum suggestions per page")
		minRel  = flag.Float64("min-relevance", linkgraph.DefaultMinRelevance, "Minimum overall score")
	)
	flag.Parse()

	// Flags win over env; the env file is optional.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("env file %s not loaded: %v", *envFile, err)
	}
	path := *dbPath
	if path == "" {
		path = os.Getenv("SEO_CATALOG_DB")
	}
	if path == "" {
		log.Fatal("--db or SEO_CATALOG_DB required")
	}

	ctx := context.Background()
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	defer store.Close()

	idx := linkgraph.NewIndex(store, nil)
	if err := idx.Build(ctx); err != nil {
		log.Fatalf("build relevance index: %v", err)
	}

	if *source != "" {
		printSuggestions(idx, *source, *limit, *minRel)
		return
	}

	pages, err := store.ListPages(ctx)
	if err != nil {
		log.Fatalf("list pages: %v", err)
	}
	for _, p := range pages {
		printSuggestions(idx, p.URL, *limit, *minRel)
	}
}

func printSuggestions(idx *linkgraph.RelevanceIndex, url string, limit int, minRel float64) {
	fmt.Printf("%s\n", url)
	ranked := idx.TopRelevant(url, limit, minRel)
	if len(ranked) == 0 {
		fmt.Println("  (no related pages above threshold)")
		return
	}
	for _, r := range ranked {
		fmt.Printf("  %.3f  %s\n", r.Score, r.URL)
	}
}
