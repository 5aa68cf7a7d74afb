package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/persist"
)

func newInspectCmd(a *app) *cobra.Command {
	var summary bool

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load a dataset file and render it",
		Long: `Load a dataset file and render it.

The --compression and --layout settings must match those the file was saved with.

Examples:
  vecfield inspect grid field.grid
  vecfield inspect list points.bin --compression zstd --format %.3f`,
	}

	listCmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Render a binary point list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.persistOptions()
			if err != nil {
				return err
			}
			p, err := persist.LoadPointList(args[0], opts...)
			if err != nil {
				return err
			}
			a.printDataset(cmd, p, summary)

			return nil
		},
	}

	gridCmd := &cobra.Command{
		Use:   "grid FILE",
		Short: "Render a grid text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.persistOptions()
			if err != nil {
				return err
			}
			g, err := persist.LoadGrid(args[0], opts...)
			if err != nil {
				return err
			}
			a.printDataset(cmd, g, summary)

			return nil
		},
	}

	inspectCmd.PersistentFlags().BoolVar(&summary, "summary", false, "Print only the summary line")
	inspectCmd.AddCommand(listCmd, gridCmd)

	return inspectCmd
}

func (a *app) printDataset(cmd *cobra.Command, ds dataset.Dataset, summary bool) {
	if summary {
		a.printf(cmd, "%s", ds)
		return
	}
	a.printf(cmd, "%s", ds.Render(a.verb()))
}
