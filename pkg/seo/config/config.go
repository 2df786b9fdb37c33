// Package config loads curated YAML data files: taxonomy, stoplist,
// conversion keyword catalog, and performance budgets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cranemast/seo/pkg/seo/conversion"
	"github.com/cranemast/seo/pkg/seo/lsi"
	"github.com/cranemast/seo/pkg/seo/vitals"
)

// TaxonomyFile is the curated taxonomy document shape.
type TaxonomyFile struct {
	Entries []TaxonomyEntry `yaml:"entries"`
}

// TaxonomyEntry is one curated concept.
type TaxonomyEntry struct {
	Keyword string   `yaml:"keyword"`
	Related []string `yaml:"related"`
	Context []string `yaml:"context"`
}

// LoadTaxonomy loads a curated taxonomy from a YAML file.
func LoadTaxonomy(path string) (*lsi.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TaxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	tax := lsi.NewTaxonomy()
	for _, e := range file.Entries {
		tax.Add(e.Keyword, e.Related, e.Context)
	}
	return tax, nil
}

// StoplistFile is the stopword list document shape.
type StoplistFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file StoplistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Terms, nil
}

// ConversionFile is the conversion keyword catalog document shape.
type ConversionFile struct {
	Groups []ConversionGroup `yaml:"groups"`
}

// ConversionGroup holds one category/locale keyword set.
type ConversionGroup struct {
	Category string               `yaml:"category"`
	Locale   string               `yaml:"locale"`
	Keywords []conversion.Keyword `yaml:"keywords"`
}

// LoadConversion loads the conversion keyword catalog from YAML.
func LoadConversion(path string) (*conversion.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file ConversionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	cat := conversion.NewCatalog()
	for _, g := range file.Groups {
		cat.Add(g.Category, g.Locale, g.Keywords...)
	}
	return cat, nil
}

// BudgetsFile is the performance budget document shape.
type BudgetsFile struct {
	Budgets    map[string]float64          `yaml:"budgets"`
	Thresholds map[string]vitals.Threshold `yaml:"thresholds"`
}

// LoadBudgets loads budget and threshold overrides from YAML.
// Values are accepted as-is; budgets are tuning knobs, not user input.
func LoadBudgets(path string) (BudgetsFile, error) {
	var file BudgetsFile
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, err
	}
	return file, nil
}
