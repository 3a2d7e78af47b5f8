// Copyright (c) the Flowscope authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// flowscope: run taint analysis over an extracted code store.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/taint"
	"github.com/flowscope/flowscope/internal/formatutil"
)

var (
	configPath = flag.String("config", "", "Config file path for the analysis")
	verbose    = flag.Bool("v", false, "Verbose (debug) logging")
)

const usage = ` Find taint flows from sources to sinks in an extracted code store.
Usage:
    flowscope [options] <store.db>
Examples:
% flowscope -config config.yaml repo.db
Run without a config to use defaults (no sanitizers recognized).
`

func main() {
	var err error
	flag.Parse()

	if flag.NArg() != 1 {
		_, _ = fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
		os.Exit(2)
	}
	dbPath := flag.Arg(0)

	cfg := config.NewDefault()
	if *configPath != "" {
		config.SetGlobalConfig(*configPath)
		cfg, err = config.LoadGlobal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}
	if *verbose {
		cfg.LogLevel = int(config.DebugLevel)
	}

	fmt.Println(formatutil.Faint("Analyzing " + dbPath))

	start := time.Now()
	result, err := taint.RunAnalysis(cfg, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Analysis took %3.4f s\n", time.Since(start).Seconds())

	if len(result.Findings) == 0 {
		fmt.Println(formatutil.Green("no taint flows found"))
		return
	}
	fmt.Println(formatutil.Red(fmt.Sprintf("%d taint flows found", len(result.Findings))))
	for _, f := range result.Findings {
		line := f.String()
		if f.BudgetExceeded {
			line += " " + formatutil.Yellow("(partial search)")
		}
		fmt.Printf("  %s\n", line)
	}
	if result.PartialSources > 0 || result.SkippedSources > 0 {
		fmt.Println(formatutil.Yellow(fmt.Sprintf(
			"%d partial and %d skipped sources; raise the block budgets for a complete run",
			result.PartialSources, result.SkippedSources)))
	}
}
