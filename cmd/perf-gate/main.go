package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cranemast/seo/pkg/seo/config"
	"github.com/cranemast/seo/pkg/seo/vitals"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to Web-Vitals sample JSON (required)")
		budgetsCfg = flag.String("budgets", "", "Optional: budgets/thresholds YAML override")
		quiet      = flag.Bool("quiet", false, "Only set the exit code, no report output")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read sample: %v", err)
	}

	var sample vitals.Sample
	if err := json.Unmarshal(data, &sample); err != nil {
		log.Fatalf("parse sample: %v", err)
	}

	monitor := vitals.NewMonitor()
	if *budgetsCfg != "" {
		file, err := config.LoadBudgets(*budgetsCfg)
		if err != nil {
			log.Fatalf("load budgets: %v", err)
		}
		monitor.UpdateBudgets(file.Budgets)
		monitor.UpdateThresholds(file.Thresholds)
	}

	verdict := monitor.ValidateBuild(sample)

	if !*quiet {
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			log.Fatalf("marshal verdict: %v", err)
		}
		fmt.Println(string(out))
	}

	if verdict.ShouldFail {
		log.Printf("performance gate failed: %d budget violations, overall status %s",
			len(verdict.Report.Violations), verdict.Report.OverallStatus)
		os.Exit(1)
	}
}
