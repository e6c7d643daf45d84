package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkgforge/depscope/pkg/cli/format"
	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/manifest"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <manifest.yaml>",
		Short: "Load a package manifest into the store",
		Long: `Reads a YAML manifest describing published packages and their
dependencies and writes every record into the local package store.
Existing records with the same identifier are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			m, err := manifest.Load(args[0])
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
			for _, pkg := range m.Packages {
				if err := st.Put(ctx, pkg); err != nil {
					return fmt.Errorf("failed to store %s: %w", pkg.Ident, err)
				}
			}
			log.Info("manifest loaded",
				log.Str("path", args[0]),
				log.Int("packages", len(m.Packages)),
				log.Duration("elapsed", time.Since(start)))

			format.SuccessColor.Printf("Loaded %d packages", len(m.Packages))
			fmt.Printf(" (%s)\n", format.Seconds(time.Since(start)))
			return nil
		},
	}
}
