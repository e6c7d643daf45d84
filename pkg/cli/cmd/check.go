package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgforge/depscope/pkg/check"
	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/types"
)

func newCheckCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Check a package's closure for version conflicts",
		Long: `Walks the full dependency closure of a package, re-resolving every
dependency to its latest published version, and reports every lineage
that two paths disagree about. The name may be a fully-qualified
identifier or an origin/name short name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			g, err := buildGraph(ctx, cfg, st)
			if err != nil {
				st.Close()
				return err
			}

			source := &check.StoreSource{Store: st, IncludeBuildDeps: cfg.BuildDepsEnabled()}
			checker := check.NewChecker(g, source, log.GetDefaultLogger())
			rep, err := checker.Check(ctx, args[0], filter)
			st.Close()
			if err != nil {
				if errors.Is(err, types.ErrPackageNotFound) {
					fmt.Println("No matching package found")
					os.Exit(1)
				}
				return err
			}

			renderReport(os.Stdout, rep)
			if len(rep.Conflicts()) > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only follow dependencies with this origin prefix")
	return cmd
}
