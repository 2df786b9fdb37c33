package config

import (
	"fmt"

	"github.com/cranemast/seo/pkg/seo/conversion"
	"github.com/cranemast/seo/pkg/seo/ingest"
	"github.com/cranemast/seo/pkg/seo/lsi"
	"github.com/cranemast/seo/pkg/seo/vitals"
)

// Loader loads all curation files and constructs components. Empty
// paths fall back to the built-in defaults.
type Loader struct {
	TaxonomyPath   string
	StoplistPath   string
	ConversionPath string
	BudgetsPath    string
}

// Components holds the loaded curation data.
type Components struct {
	Taxonomy   *lsi.Taxonomy
	Stopwords  []string
	Conversion *conversion.Catalog
	Budgets    map[string]float64
	Thresholds map[string]vitals.Threshold
}

// Load reads all configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Taxonomy:   lsi.DefaultTaxonomy(),
		Stopwords:  ingest.DefaultStopwords(),
		Conversion: conversion.DefaultCatalog(),
	}

	if l.TaxonomyPath != "" {
		tax, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Taxonomy = tax
	}

	if l.StoplistPath != "" {
		terms, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = terms
	}

	if l.ConversionPath != "" {
		cat, err := LoadConversion(l.ConversionPath)
		if err != nil {
			return nil, fmt.Errorf("load conversion catalog: %w", err)
		}
		comp.Conversion = cat
	}

	if l.BudgetsPath != "" {
		file, err := LoadBudgets(l.BudgetsPath)
		if err != nil {
			return nil, fmt.Errorf("load budgets: %w", err)
		}
		comp.Budgets = file.Budgets
		comp.Thresholds = file.Thresholds
	}

	return comp, nil
}
