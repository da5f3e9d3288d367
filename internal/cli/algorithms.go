package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/thinning"
)

func newAlgorithmsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the available thinning algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			reg := thinning.Default()

			if plain {
				for _, name := range reg.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			var rows [][]string
			for _, name := range reg.Names() {
				desc, err := reg.Get(name)
				if err != nil {
					return err
				}
				mark := ""
				if name == cfg.Algorithm {
					mark = "default"
				}
				rows = append(rows, []string{name, yesNo(desc.IncrementalReuse), mark})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Algorithm", "Incremental", ""}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one name per line")
	return cmd
}
