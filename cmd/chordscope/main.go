// Package main is the entry point for the chordscope inspector.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dshills/chordscope/internal/binding"
	"github.com/dshills/chordscope/internal/chord"
	"github.com/dshills/chordscope/internal/config"
	"github.com/dshills/chordscope/internal/prefixtree"
	"github.com/dshills/chordscope/internal/search"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	file        string
	configPath  string
	profile     string
	query       string
	limit       int
	category    string
	export      bool
	live        bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("chordscope %s (%s)\n", version, commit)
		return 0
	}
	if opts.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.profile != "" {
		cfg.DisplayProfile = chord.ProfileFromName(opts.profile)
	}

	bindings, skipped, err := binding.ParseFile(opts.file, binding.Options{
		DeriveCategories: cfg.DeriveCategories,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d invalid record(s)\n", len(skipped))
	}

	switch {
	case opts.export:
		return runExport(bindings)
	case opts.query != "":
		return runSearch(bindings, opts, cfg)
	case opts.category != "":
		return runCategory(bindings, opts.category, cfg)
	case opts.live:
		if err := runLive(bindings, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	default:
		return runStats(bindings, cfg)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.file, "file", "", "keybindings JSON file to inspect")
	flag.StringVar(&opts.configPath, "config", "", "optional config file")
	flag.StringVar(&opts.profile, "profile", "", "display profile: symbol or text")
	flag.StringVar(&opts.query, "search", "", "fuzzy search query")
	flag.IntVar(&opts.limit, "limit", 0, "max search results (0 = config default)")
	flag.StringVar(&opts.category, "category", "", "list bindings in a category")
	flag.BoolVar(&opts.export, "export", false, "write normalized keybindings JSON to stdout")
	flag.BoolVar(&opts.live, "live", false, "interactive live chord tracking")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

func runStats(bindings []*binding.Parsed, cfg config.Config) int {
	tree := prefixtree.Build(bindings)
	stats := prefixtree.ComputeStats(tree)

	fmt.Printf("Bindings:       %d\n", len(bindings))
	fmt.Printf("Tree nodes:     %d\n", stats.TotalNodes)
	fmt.Printf("Max depth:      %d\n", stats.MaxDepth)
	fmt.Printf("Single-chord:   %d\n", stats.SingleChordCount)
	fmt.Printf("Multi-chord:    %d\n", stats.MultiChordCount)

	ix := search.NewIndex()
	ix.Build(bindings)
	fmt.Println("\nCategories:")
	counts := ix.CategoryCounts()
	for _, cat := range ix.Categories() {
		fmt.Printf("  %-16s %d\n", cat, counts[cat])
	}

	conflicts := 0
	for _, node := range prefixtree.Leaves(tree) {
		if len(node.Bindings) > 1 {
			conflicts++
			path := strings.Join(node.FullPath, " ")
			fmt.Printf("\nConflict at %s:\n", chord.DisplaySequence(chord.ParseSequence(path), cfg.DisplayProfile))
			for _, b := range node.Bindings {
				marker := ""
				if b.Disabled {
					marker = " (disabled)"
				}
				fmt.Printf("  %s%s\n", b.Command, marker)
			}
		}
	}
	if conflicts == 0 {
		fmt.Println("\nNo conflicts.")
	}
	return 0
}

func runSearch(bindings []*binding.Parsed, opts options, cfg config.Config) int {
	ix := search.NewIndex()
	ix.Build(bindings)

	limit := opts.limit
	if limit <= 0 {
		limit = cfg.SearchLimit
	}

	results := ix.Search(opts.query, limit)
	if len(results) == 0 {
		fmt.Println("No matches.")
		return 0
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\n",
			r.Binding.DisplaySequence(cfg.DisplayProfile),
			r.Binding.Command,
			r.Binding.Category,
			r.Score)
	}
	w.Flush()
	return 0
}

func runCategory(bindings []*binding.Parsed, category string, cfg config.Config) int {
	ix := search.NewIndex()
	ix.Build(bindings)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, b := range ix.FilterByCategory(category) {
		fmt.Fprintf(w, "%s\t%s\n", b.DisplaySequence(cfg.DisplayProfile), b.Command)
	}
	w.Flush()
	return 0
}

func runExport(bindings []*binding.Parsed) int {
	data, err := binding.ExportJSON(bindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	os.Stdout.Write(data)
	fmt.Println()
	return 0
}
