package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cranemast/seo/internal/htmltext"
	"github.com/cranemast/seo/pkg/seo"
	"github.com/cranemast/seo/pkg/seo/config"
	"github.com/cranemast/seo/pkg/seo/optimize"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to content file (required)")
		keywords    = flag.String("keywords", "", "Comma-separated target keywords (required)")
		siteName    = flag.String("site", "Cranemast", "Site name for title suggestions")
		taxonomyCfg = flag.String("taxonomy", "", "Optional: taxonomy YAML override")
		stoplistCfg = flag.String("stoplist", "", "Optional: stoplist YAML override")
		convCfg     = flag.String("conversion", "", "Optional: conversion catalog YAML override")
		isHTML      = flag.Bool("html", false, "Strip HTML markup from the input before analysis")
		minDensity  = flag.Float64("min-density", optimize.DefaultMinDensity, "Minimum keyword density percent")
		maxDensity  = flag.Float64("max-density", optimize.DefaultMaxDensity, "Maximum keyword density percent")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *keywords == "" {
		log.Fatal("--keywords required")
	}

	loader := config.Loader{
		TaxonomyPath:   *taxonomyCfg,
		StoplistPath:   *stoplistCfg,
		ConversionPath: *convCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	content := string(data)
	if *isHTML {
		content, err = htmltext.Extract(bytes.NewReader(data))
		if err != nil {
			log.Fatalf("extract text: %v", err)
		}
	}

	var targets []string
	for _, kw := range strings.Split(*keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			targets = append(targets, kw)
		}
	}

	engine := seo.New(seo.Options{
		Taxonomy:   components.Taxonomy,
		Conversion: components.Conversion,
		Stopwords:  components.Stopwords,
		SiteName:   *siteName,
	})

	opts := optimize.DefaultOptions(targets...)
	opts.MinDensity = *minDensity
	opts.MaxDensity = *maxDensity
	result := engine.Optimize(content, opts)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
