package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pkgforge/depscope/internal/config"
	"github.com/pkgforge/depscope/pkg/check"
	"github.com/pkgforge/depscope/pkg/cli/format"
	"github.com/pkgforge/depscope/pkg/graph"
	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/store"
	"github.com/pkgforge/depscope/pkg/types"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Explore the dependency graph interactively",
		Long: `Opens the package store, builds the dependency graph, and starts an
interactive shell for querying it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			start := time.Now()
			g, err := buildGraph(ctx, cfg, st)
			if err != nil {
				return err
			}
			stats := g.Stats()
			fmt.Printf("OK: %d nodes, %d edges (%s)\n",
				stats.NodeCount, stats.EdgeCount, format.Seconds(time.Since(start)))

			sh := NewShell(cfg, g, st, os.Stdout)
			return sh.Run(ctx, os.Stdin)
		},
	}
}

// Shell is the interactive graph explorer. The active filter is shell
// state: it narrows find, rdeps, export, and conflict checks until it is
// removed.
type Shell struct {
	cfg     *config.Config
	graph   *graph.PackageGraph
	store   store.PackageStore
	source  *check.StoreSource
	checker *check.Checker
	logger  log.Logger

	out    io.Writer
	filter string
}

// NewShell wires a shell over an already-built graph and an open store.
func NewShell(cfg *config.Config, g *graph.PackageGraph, st store.PackageStore, out io.Writer) *Shell {
	logger := log.GetDefaultLogger().WithComponent("shell")
	source := &check.StoreSource{Store: st, IncludeBuildDeps: cfg.BuildDepsEnabled()}
	return &Shell{
		cfg:     cfg,
		graph:   g,
		store:   st,
		source:  source,
		checker: check.NewChecker(g, source, logger),
		logger:  logger,
		out:     out,
	}
}

// Run reads commands line by line until exit or EOF.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "\nAvailable commands: help, stats, top, filter, find, resolve, rdeps, deps, check, export, exit\n\n")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "command> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if s.Eval(ctx, scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// Eval runs one command line and reports whether the shell should exit.
func (s *Shell) Eval(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "help":
		s.doHelp()
	case "stats":
		s.doStats()
	case "top":
		s.doTop(args)
	case "filter":
		s.doFilter(args)
	case "find":
		s.doFind(args)
	case "resolve":
		s.doResolve(args)
	case "rdeps":
		s.doRdeps(args)
	case "deps":
		s.doDeps(ctx, args)
	case "check":
		s.doCheck(ctx, args)
	case "export":
		s.doExport(args)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(s.out, "Unknown command")
	}
	return false
}

func (s *Shell) doHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  help                    Print this message")
	fmt.Fprintln(s.out, "  stats                   Print graph statistics")
	fmt.Fprintln(s.out, "  top     [<count>]       Print nodes with the most reverse dependencies")
	fmt.Fprintln(s.out, "  filter  [<origin>]      Filter subsequent commands by origin prefix (no arg removes)")
	fmt.Fprintln(s.out, "  find    <term> [<max>]  Find packages containing term")
	fmt.Fprintln(s.out, "  resolve <name>          Print the latest identifier for origin/name")
	fmt.Fprintln(s.out, "  rdeps   <name> [<max>]  Print reverse dependencies of origin/name")
	fmt.Fprintln(s.out, "  deps    <name>          Print direct dependencies of a package")
	fmt.Fprintln(s.out, "  check   <name>          Check a package's closure for version conflicts")
	fmt.Fprintln(s.out, "  export  <file>          Export the latest identifier of every package")
	fmt.Fprintln(s.out, "  exit                    Exit the shell")
}

func (s *Shell) doStats() {
	start := time.Now()
	stats := s.graph.Stats()
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "OK: %d items (%s)\n\n", stats.NodeCount, format.Seconds(elapsed))
	fmt.Fprintf(s.out, "Node count: %d\n", stats.NodeCount)
	fmt.Fprintf(s.out, "Edge count: %d\n", stats.EdgeCount)
	fmt.Fprintf(s.out, "Connected components: %d\n", stats.ConnectedComponents)
	fmt.Fprintf(s.out, "Is cyclic: %v\n", stats.IsCyclic)
}

func (s *Shell) doTop(args []string) {
	count := s.cfg.Shell.TopDefault
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "Invalid count")
			return
		}
		count = n
	}

	start := time.Now()
	entries := s.graph.Top(count)
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "OK: %d items (%s)\n\n", len(entries), format.Seconds(elapsed))
	if len(entries) == 0 {
		return
	}

	// Cap the name column so rows fit the terminal.
	maxName := format.TerminalWidth() - 10
	data := pterm.TableData{{"PACKAGE", "RDEPS"}}
	for _, e := range entries {
		name := e.ShortName
		if maxName > 3 && len(name) > maxName {
			name = name[:maxName-3] + "..."
		}
		data = append(data, []string{name, strconv.Itoa(e.Count)})
	}
	table := pterm.DefaultTable.WithHasHeader(true).
		WithHeaderStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		WithWriter(s.out)
	if err := table.WithData(data).Render(); err != nil {
		s.logger.Warn("failed to render table", log.Err(err))
	}
}

func (s *Shell) doFilter(args []string) {
	if len(args) == 0 {
		s.filter = ""
		fmt.Fprintln(s.out, "Removed filter")
		return
	}
	s.filter = strings.ToLower(args[0])
	fmt.Fprintf(s.out, "New filter: %s\n", s.filter)
}

func (s *Shell) doFind(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing search term")
		return
	}
	term := strings.ToLower(args[0])
	max := s.cfg.Shell.FindDefault
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "Invalid count")
			return
		}
		max = n
	}

	start := time.Now()
	names := s.graph.Search(term)
	if s.filter != "" {
		filtered := names[:0]
		for _, name := range names {
			if strings.HasPrefix(name, s.filter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "OK: %d items (%s)\n\n", len(names), format.Seconds(elapsed))
	if s.filter != "" {
		fmt.Fprintf(s.out, "Results filtered by: %s\n\n", s.filter)
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No matching packages found")
		return
	}
	if len(names) > max {
		names = names[:max]
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
}

func (s *Shell) doResolve(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing package name")
		return
	}
	name := strings.ToLower(args[0])

	start := time.Now()
	ident, ok := s.graph.Resolve(name)
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "OK: 1 items (%s)\n\n", format.Seconds(elapsed))
	if !ok {
		fmt.Fprintln(s.out, "No matching packages found")
		return
	}
	fmt.Fprintf(s.out, "%s\n", ident)
}

func (s *Shell) doRdeps(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing package name")
		return
	}
	name := strings.ToLower(args[0])
	max := 10
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "Invalid count")
			return
		}
		max = n
	}

	start := time.Now()
	rdeps, ok := s.graph.Rdeps(name)
	elapsed := time.Since(start)
	if !ok {
		fmt.Fprintln(s.out, "No matching package found")
		return
	}

	if s.filter != "" {
		filtered := rdeps[:0]
		for _, rd := range rdeps {
			if strings.HasPrefix(rd.ShortName, s.filter) {
				filtered = append(filtered, rd)
			}
		}
		rdeps = filtered
	}

	fmt.Fprintf(s.out, "OK: %d items (%s)\n\n", len(rdeps), format.Seconds(elapsed))
	if s.filter != "" {
		fmt.Fprintf(s.out, "Results filtered by: %s\n\n", s.filter)
	}
	if len(rdeps) > max {
		rdeps = rdeps[:max]
	}
	for _, rd := range rdeps {
		fmt.Fprintf(s.out, "%s (%s)\n", rd.ShortName, rd.Latest)
	}
}

func (s *Shell) doDeps(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing package name")
		return
	}
	name := strings.ToLower(args[0])

	start := time.Now()
	ident := check.ResolveName(s.graph, name)
	deps, err := s.source.Dependencies(ctx, ident)
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "OK: (%s)\n\n", format.Seconds(elapsed))
	fmt.Fprintf(s.out, "Dependencies for: %s\n", ident)
	if err != nil {
		if errors.Is(err, types.ErrPackageNotFound) {
			fmt.Fprintln(s.out, "No matching package found")
		} else {
			format.ErrorColor.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}
	for _, dep := range deps {
		if !strings.HasPrefix(dep, s.filter) {
			continue
		}
		fmt.Fprintln(s.out, dep)
	}
}

func (s *Shell) doCheck(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing package name")
		return
	}
	name := strings.ToLower(args[0])

	rep, err := s.checker.Check(ctx, name, s.filter)
	if err != nil {
		if errors.Is(err, types.ErrPackageNotFound) {
			fmt.Fprintln(s.out, "No matching package found")
		} else {
			format.ErrorColor.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}
	renderReport(s.out, rep)
}

func (s *Shell) doExport(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Missing file name")
		return
	}
	filename := args[0]

	start := time.Now()
	latest := s.graph.Latest()
	if s.filter != "" {
		filtered := latest[:0]
		for _, ident := range latest {
			if strings.HasPrefix(ident, s.filter) {
				filtered = append(filtered, ident)
			}
		}
		latest = filtered
	}
	sort.Strings(latest)

	if err := writeLines(filename, latest); err != nil {
		format.ErrorColor.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "OK: %d items (%s)\n\n", len(latest), format.Seconds(time.Since(start)))
	if s.filter != "" {
		fmt.Fprintf(s.out, "Results filtered by: %s\n\n", s.filter)
	}
	fmt.Fprintf(s.out, "Exported to: %s\n", filename)
}

func writeLines(filename string, lines []string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
