package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/vecfield/collection"
	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/persist"
)

const noneMarker = "none"

// demoField is the field used by the demo datasets: E(x, y) = (x, y).
func demoField(x, y float64) dataset.Vector2 {
	return dataset.Vector2{X: float32(x), Y: float32(y)}
}

func newDemoCmd(a *app) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstrations",
	}

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Build a sample collection and run every query on it",
		Args:  cobra.NoArgs,
		RunE:  a.runDemoQuery,
	}

	var dir string
	persistCmd := &cobra.Command{
		Use:   "persist",
		Short: "Save and reload a sample grid and point list",
		Long: `Save a sample grid and point list, load them back, and show the
errors reported for missing files.

Examples:
  vecfield demo persist
  vecfield demo persist --dir /tmp/fields --compression zstd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemoPersist(cmd, dir)
		},
	}
	persistCmd.Flags().StringVar(&dir, "dir", "", "Directory for the demo files (default: a new temp directory)")

	demoCmd.AddCommand(queryCmd, persistCmd)

	return demoCmd
}

// demoCollection returns the sample collection: three grids and three point
// lists, two of which carry the zero timestamp.
func demoCollection(now time.Time) (*collection.Collection, error) {
	var zero time.Time

	arr2, err := dataset.NewGrid("Array_entry_2", zero, 2, 2, 1, 1, demoField)
	if err != nil {
		return nil, err
	}
	arr3, err := dataset.NewGrid("Array_entry_3", now, 3, 3, 1, 1, demoField)
	if err != nil {
		return nil, err
	}
	list2 := dataset.NewPointList("List_entry_2", zero)
	list2.AddDefaults(5, demoField)
	list3 := dataset.NewPointList("List_entry_3", now)
	list3.AddDefaults(4, demoField)

	c := collection.New()
	for _, ds := range []dataset.Dataset{
		dataset.NewEmptyGrid("Array_entry_1", now),
		arr2,
		arr3,
		dataset.NewPointList("List_entry_1", now),
		list2,
		list3,
	} {
		if !c.Add(ds) {
			return nil, fmt.Errorf("duplicate dataset name %q", ds.Name())
		}
	}

	return c, nil
}

func (a *app) runDemoQuery(cmd *cobra.Command, _ []string) error {
	c, err := demoCollection(a.now())
	if err != nil {
		return err
	}
	empty := collection.New()

	a.printHeading(cmd, "Collection")
	a.printf(cmd, "%s\n", c.Render(a.verb()))

	a.printHeading(cmd, "Most distant item")
	a.printMaxDistanceItem(cmd, c)
	a.printHeading(cmd, "Most distant item (empty collection)")
	a.printMaxDistanceItem(cmd, empty)

	a.printHeading(cmd, "X coordinates occurring more than once")
	a.printDuplicateX(cmd, c)
	a.printHeading(cmd, "X coordinates occurring more than once (empty collection)")
	a.printDuplicateX(cmd, empty)

	a.printHeading(cmd, "Earliest datasets")
	a.printEarliest(cmd, c)
	a.printHeading(cmd, "Earliest datasets (empty collection)")
	a.printEarliest(cmd, empty)

	return nil
}

func (a *app) printMaxDistanceItem(cmd *cobra.Command, c *collection.Collection) {
	item, ok := c.MaxDistanceItem()
	if !ok {
		a.printf(cmd, "%s\n\n", noneMarker)
		return
	}
	a.printf(cmd, "%s\n\n", item)
}

func (a *app) printDuplicateX(cmd *cobra.Command, c *collection.Collection) {
	xs, ok := c.DuplicateXCoordinates()
	if !ok {
		a.printf(cmd, "%s\n\n", noneMarker)
		return
	}
	for _, x := range xs {
		a.printf(cmd, a.verb()+"\n", x)
	}
	a.printf(cmd, "\n")
}

func (a *app) printEarliest(cmd *cobra.Command, c *collection.Collection) {
	datasets, ok := c.EarliestDatasets()
	if !ok {
		a.printf(cmd, "%s\n\n", noneMarker)
		return
	}
	for _, ds := range datasets {
		a.printf(cmd, "%s", ds)
	}
	a.printf(cmd, "\n")
}

func (a *app) runDemoPersist(cmd *cobra.Command, dir string) error {
	opts, err := a.persistOptions()
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = os.MkdirTemp("", "vecfield-demo-*")
		if err != nil {
			return fmt.Errorf("failed to create demo directory: %w", err)
		}
	}
	a.printf(cmd, "Demo directory: %s\n\n", dir)

	var zero time.Time
	grid, err := dataset.NewGrid("Pigeon", zero, 2, 2, 0.1, 0.1, demoField)
	if err != nil {
		return err
	}
	list := dataset.NewPointList("Raptor", zero)
	list.AddDefaults(4, demoField)

	gridPath := filepath.Join(dir, "test")
	listPath := filepath.Join(dir, "binary_test")

	a.printHeading(cmd, "Datasets to save")
	a.printf(cmd, "%s\n%s\n", grid.Render(a.verb()), list.Render(a.verb()))

	// the two files are independent, so they are written in parallel
	var g errgroup.Group
	g.Go(func() error { return persist.SaveGrid(gridPath, grid, opts...) })
	g.Go(func() error { return persist.SavePointList(listPath, list, opts...) })
	if err := g.Wait(); err != nil {
		return err
	}
	a.success.Fprintf(cmd.OutOrStdout(), "Saved %s and %s\n\n", gridPath, listPath)

	loadedGrid, err := persist.LoadGrid(gridPath, opts...)
	if err != nil {
		return err
	}
	loadedList, err := persist.LoadPointList(listPath, opts...)
	if err != nil {
		return err
	}
	a.printHeading(cmd, "Loaded datasets")
	a.printf(cmd, "%s\n%s\n", loadedGrid.Render(a.verb()), loadedList.Render(a.verb()))

	missing := filepath.Join(dir, "NotAFileName")
	a.printHeading(cmd, "Missing files")
	a.reportExpectedError(cmd, "save grid", persist.SaveGrid(missing, grid, append(opts, persist.WithRequireExisting())...))
	_, err = persist.LoadGrid(missing, opts...)
	a.reportExpectedError(cmd, "load grid", err)
	a.reportExpectedError(cmd, "save point list", persist.SavePointList(missing, list, append(opts, persist.WithRequireExisting())...))
	_, err = persist.LoadPointList(missing, opts...)
	a.reportExpectedError(cmd, "load point list", err)

	return nil
}

func (a *app) reportExpectedError(cmd *cobra.Command, op string, err error) {
	if err == nil {
		a.failure.Fprintf(cmd.OutOrStdout(), "%s: unexpectedly succeeded\n", op)
		return
	}
	a.failure.Fprintf(cmd.OutOrStdout(), "%s: %v\n", op, err)
}
