package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/calebmur/hefty/internal/config"
	"github.com/calebmur/hefty/internal/diag"
	"github.com/calebmur/hefty/internal/filter"
	"github.com/calebmur/hefty/internal/scan"
	"github.com/calebmur/hefty/internal/stats"
	"github.com/calebmur/hefty/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// filterFlag is a custom pflag.Value that preserves CLI ordering of
// --exclude and --include rules by appending to a shared filter.Chain.
type filterFlag struct {
	chain   *filter.Chain
	include bool
}

func (*filterFlag) String() string { return "" }
func (*filterFlag) Type() string   { return "pattern" }

func (f *filterFlag) Set(val string) error {
	if f.include {
		return f.chain.Include(val)
	}
	return f.chain.Exclude(val)
}

//nolint:gocyclo // main CLI entry point orchestrates all flag handling
func run() int {
	var (
		number      int
		minDepth    int
		maxDepth    int
		noRecursion bool
		followLinks bool
		includeDirs bool
		ascending   bool
		sortKey     string
		minSizeStr  string
		absolute    bool
		jsonOut     bool
		summary     bool
		noColor     bool
		verbose     bool
		quiet       bool
		showVersion bool
	)

	chain := filter.New()

	rootCmd := &cobra.Command{
		Use:   "hefty [flags] [path]",
		Short: "Find the largest files under a directory",
		Long: heredoc.Doc(`
			hefty walks a directory tree and lists the entries that take up
			the most space.

			By default it searches the whole tree below the given path (or
			the current directory), skips directory entries themselves and
			prints the five largest files. Symlinks are listed but not
			followed unless --follow-links is set.

			Unreadable nodes never abort a run: they are skipped and logged
			to stderr with a stable error category.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(os.Stdout, "hefty %s\n", version)
				return nil
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			// Configure logging.
			logLevel := slog.LevelWarn
			if verbose {
				logLevel = slog.LevelDebug
			} else if quiet {
				logLevel = slog.LevelError
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)

			// Load optional config file and apply defaults for flags not
			// explicitly set on the CLI.
			colorMode := "auto"
			cfg, err := config.Load()
			if err != nil {
				slog.Warn("failed to load config", "error", err)
			}
			applyConfigDefaults(cmd, cfg.Defaults, &number, &ascending, &absolute, &colorMode)
			if noColor {
				colorMode = "never"
			}

			if minSizeStr != "" {
				n, err := filter.ParseSize(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid --min-size: %w", err)
				}
				chain.SetMinSize(n)
			}

			opts := scan.DefaultOptions()
			opts.MinDepth = minDepth
			if cmd.Flags().Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}
			if noRecursion {
				// --no-recursion wins over --max-depth.
				opts.MaxDepth = 1
			}
			opts.FollowLinks = followLinks
			opts.IncludeDirs = includeDirs

			collector := stats.NewCollector()
			notify := func(ev diag.Event) {
				switch ev.Type {
				case diag.WalkError:
					collector.AddWalkErrors(1)
					slog.Error("cannot open", "path", ev.Path, "category", ev.Label, "error", ev.Err)
				case diag.SizeError:
					collector.AddSizeErrors(1)
					slog.Warn("cannot stat", "path", ev.Path, "category", ev.Label, "error", ev.Err)
				}
			}

			slog.Debug("starting walk",
				"root", root,
				"min_depth", opts.MinDepth,
				"max_depth", opts.MaxDepth,
				"follow_links", opts.FollowLinks,
				"include_dirs", opts.IncludeDirs,
			)

			finder := scan.Find(root, opts, notify)
			if err := rank(finder, sortKey, ascending); err != nil {
				return err
			}

			entries := keep(finder.Entries(), chain, root, collector)
			if len(entries) == 0 {
				fmt.Fprintln(os.Stderr, "hefty: no files found")
				return &exitError{code: 1}
			}
			if number > 0 && len(entries) > number {
				entries = entries[:number]
			}

			base, err := os.Getwd()
			if err != nil {
				base = "."
			}
			printer := ui.Printer{
				W:        os.Stdout,
				Color:    !jsonOut && ui.ColorEnabled(colorMode, os.Stdout.Fd()),
				Absolute: absolute,
				Base:     base,
			}

			if jsonOut {
				if err := printer.JSON(entries); err != nil {
					return err
				}
			} else if err := printer.Table(entries); err != nil {
				return err
			}

			if summary {
				fmt.Fprintln(os.Stderr, printer.Summary(collector.Snapshot()))
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.Flags().IntVarP(&number, "number", "n", 5, "number of entries to list")
	rootCmd.Flags().IntVar(&minDepth, "min-depth", 0, "skip nodes shallower than this depth (root is 0)")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, "do not descend below this depth (default: unbounded)")
	rootCmd.Flags().BoolVar(&noRecursion, "no-recursion", false, "only visit the given directory itself (wins over --max-depth)")
	rootCmd.Flags().BoolVarP(&followLinks, "follow-links", "l", false, "resolve symlinks and descend into link targets")
	rootCmd.Flags().BoolVarP(&includeDirs, "include-dirs", "i", false, "list directory entries as well")
	rootCmd.Flags().BoolVar(&ascending, "asc", false, "smallest first instead of largest first")
	rootCmd.Flags().StringVar(&sortKey, "by", "size", "sort key: size, name, mtime or depth")
	rootCmd.Flags().StringVar(&minSizeStr, "min-size", "", "skip files smaller than SIZE (e.g. 1M, 100K)")
	rootCmd.Flags().VarP(&filterFlag{chain: chain, include: false}, "exclude", "", "exclude paths matching PATTERN (repeatable)")
	rootCmd.Flags().VarP(&filterFlag{chain: chain, include: true}, "include", "", "re-include paths matching PATTERN (repeatable)")
	rootCmd.Flags().BoolVar(&absolute, "absolute", false, "print absolute paths")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit a JSON array instead of a table")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "print a walk summary to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")

	rootCmd.AddCommand(docsCmd)

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// rank orders the finder by the chosen key. Size ranking goes through the
// engine's own order dispatch; the other keys are plain comparators.
func rank(finder *scan.Finder, sortKey string, ascending bool) error {
	switch sortKey {
	case "size":
		order := scan.Descending
		if ascending {
			order = scan.Ascending
		}
		finder.Sort(order)
	case "name":
		finder.SortFunc(directed(ascending, func(a, b scan.Entry) int {
			return strings.Compare(a.Path, b.Path)
		}))
	case "mtime":
		finder.SortFunc(directed(ascending, func(a, b scan.Entry) int {
			return a.ModTime().Compare(b.ModTime())
		}))
	case "depth":
		finder.SortFunc(directed(ascending, func(a, b scan.Entry) int {
			return cmp.Compare(a.Depth, b.Depth)
		}))
	default:
		return fmt.Errorf("unknown sort key %q (use size, name, mtime or depth)", sortKey)
	}
	return nil
}

// directed flips an ascending comparator when descending order is wanted.
func directed(ascending bool, compare func(a, b scan.Entry) int) func(a, b scan.Entry) int {
	if ascending {
		return compare
	}
	return func(a, b scan.Entry) int { return compare(b, a) }
}

// keep applies the CLI-level pattern/size chain to the ranked entries and
// feeds the stats collector from whatever survives.
func keep(entries []scan.Entry, chain *filter.Chain, root string, collector *stats.Collector) []scan.Entry {
	kept := make([]scan.Entry, 0, len(entries))
	for _, e := range entries {
		size := e.Size()
		if !chain.Empty() {
			rel, err := filepath.Rel(root, e.Path)
			if err != nil {
				rel = e.Path
			}
			if !chain.Keep(filepath.ToSlash(rel), e.Kind == scan.Dir, size) {
				continue
			}
		}
		switch e.Kind {
		case scan.File:
			collector.AddFiles(1)
		case scan.Dir:
			collector.AddDirs(1)
		case scan.Symlink:
			collector.AddLinks(1)
		}
		collector.AddBytes(size)
		kept = append(kept, e)
	}
	return kept
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(
	cmd *cobra.Command,
	defaults config.DefaultsConfig,
	number *int,
	ascending *bool,
	absolute *bool,
	colorMode *string,
) {
	if !cmd.Flags().Changed("number") && defaults.Number != nil {
		*number = *defaults.Number
	}
	if !cmd.Flags().Changed("asc") && defaults.Ascending != nil {
		*ascending = *defaults.Ascending
	}
	if !cmd.Flags().Changed("absolute") && defaults.Absolute != nil {
		*absolute = *defaults.Absolute
	}
	if defaults.Color != nil {
		*colorMode = *defaults.Color
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
