// contigcov reads DRAGEN contig mean coverage reports
// (*.wgs_contig_mean_cov_<phenotype>.csv), merges tumor and normal runs per
// sample, and writes the coverage-per-contig report section as JSON.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/contigcov"
	_ "github.com/carbocation/contigcov/compileinfoprint"
	"github.com/carbocation/contigcov/config"
	"github.com/carbocation/contigcov/ignore"
	"github.com/carbocation/contigcov/report"
)

func main() {
	var configPath, inputs, ignoreSamples, ignoreFile, output, title string
	var skipInvalid bool

	flag.StringVar(&configPath, "config", "", "(Optional) JSON config file. Flags override its values.")
	flag.StringVar(&inputs, "input", "", "Comma-separated files or directories to search. May be gs:// objects or prefixes.")
	flag.StringVar(&ignoreSamples, "ignore", "", "(Optional) Comma-separated sample name glob patterns to leave out of the report.")
	flag.StringVar(&ignoreFile, "ignore-file", "", "(Optional) Tab-delimited file with a 'pattern' column of sample name globs to leave out.")
	flag.StringVar(&output, "output", "", "(Optional) Path for the JSON section. Defaults to stdout.")
	flag.StringVar(&title, "title", "", "(Optional) Override the chart title.")
	flag.BoolVar(&skipInvalid, "skip-invalid", false, "Skip reports that cannot be read, decompressed or parsed instead of stopping.")
	flag.Parse()

	logger := log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime)

	var cfg config.JSONConfig
	if configPath != "" {
		var err error
		cfg, err = config.ParseJSONConfigFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if inputs != "" {
		cfg.Inputs = splitList(inputs)
	}
	if ignoreSamples != "" {
		cfg.IgnoreSamples = append(cfg.IgnoreSamples, splitList(ignoreSamples)...)
	}
	if ignoreFile != "" {
		cfg.IgnoreSamplesFile = ignoreFile
	}
	if output != "" {
		cfg.Output = output
	}
	if title != "" {
		cfg.Plot.Title = title
	}
	cfg.ExpandPaths()

	if len(cfg.Inputs) == 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	patterns := cfg.IgnoreSamples
	if cfg.IgnoreSamplesFile != "" {
		fromFile, err := ignore.ReadRulesFile(cfg.IgnoreSamplesFile)
		if err != nil {
			log.Fatalln(err)
		}
		patterns = append(patterns, fromFile...)
	}
	rules, err := ignore.New(patterns...)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()

	var sclient *storage.Client
	for _, input := range cfg.Inputs {
		if contigcov.IsGoogleStoragePath(input) {
			sclient, err = storage.NewClient(ctx)
			if err != nil {
				log.Fatalln(err)
			}
			defer sclient.Close()
			break
		}
	}

	section, ok, err := report.Build(ctx, report.Options{
		Inputs:      cfg.Inputs,
		Ignore:      rules,
		Plot:        cfg.Plot,
		SkipInvalid: skipInvalid,
		Client:      sclient,
		Log:         logger,
	})
	if err != nil {
		log.Fatalln(err)
	}
	if !ok {
		logger.Println("No DRAGEN per-contig coverage found; nothing to report")
		return
	}

	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		w = f
	}

	if err := section.Write(w); err != nil {
		log.Fatalln(err)
	}
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
