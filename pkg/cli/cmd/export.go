package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkgforge/depscope/pkg/cli/format"
	"github.com/pkgforge/depscope/pkg/log"
)

func newExportCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the latest identifier of every known package",
		Long: `Writes the latest fully-qualified identifier of every origin/name
lineage in the graph to a file, one identifier per line, sorted.`,
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
			defer st.Close()

			g, err := buildGraph(cmd.Context(), cfg, st)
			if err != nil {
				return err
			}

			latest := g.Latest()
			if filter != "" {
				filtered := latest[:0]
				for _, ident := range latest {
					if strings.HasPrefix(ident, filter) {
						filtered = append(filtered, ident)
					}
				}
				latest = filtered
			}

			if err := writeLines(args[0], latest); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			log.Info("export written",
				log.Str("path", args[0]),
				log.Int("identifiers", len(latest)))
			format.SuccessColor.Printf("Exported %d identifiers", len(latest))
			fmt.Printf(" to %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only export identifiers with this origin prefix")
	return cmd
}
