package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperpress/daybook/pkg/content"
)

// quotesCommand creates the quote snapshot management command.
func (c *CLI) quotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Prefetch and inspect the cached quote snapshot",
	}

	cmd.AddCommand(c.quotesFetchCommand())
	cmd.AddCommand(c.quotesShowCommand())
	cmd.AddCommand(c.quotesClearCommand())

	return cmd
}

// quotesFetchCommand creates the "quotes fetch" subcommand. Prefetching
// fills the snapshot so a later generate run needs no quote requests.
func (c *CLI) quotesFetchCommand() *cobra.Command {
	var (
		count     int
		cacheOpts cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch quotes into the snapshot cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newCache(ctx, cacheOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			source := content.NewZenQuotes(store)
			before := len(source.Snapshot(ctx))

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %d quotes...", count))
			spinner.Start()
			quotes, err := source.Quotes(ctx, count)
			if err != nil {
				spinner.StopWithError("Fetch failed")
				return err
			}

			after := len(source.Snapshot(ctx))
			spinner.StopWithSuccess(fmt.Sprintf("Snapshot holds %d quotes (%d new)", after, after-before))
			if len(quotes) > after {
				printWarning("Source ran short, %d slots will use the filler quote", len(quotes)-after)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 366, "number of quotes to collect")
	cacheOpts.register(cmd)
	return cmd
}

// quotesShowCommand creates the "quotes show" subcommand.
func (c *CLI) quotesShowCommand() *cobra.Command {
	var cacheOpts cacheFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cached quote snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newCache(ctx, cacheOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			quotes := content.NewZenQuotes(store).Snapshot(ctx)
			if len(quotes) == 0 {
				printInfo("Snapshot is empty, run 'daybook quotes fetch' first")
				return nil
			}

			printInfo("%d quotes in snapshot", len(quotes))
			for _, q := range quotes {
				printDetail("%q - %s", q.Text, q.Author)
			}
			return nil
		},
	}

	cacheOpts.register(cmd)
	return cmd
}

// quotesClearCommand creates the "quotes clear" subcommand.
func (c *CLI) quotesClearCommand() *cobra.Command {
	var cacheOpts cacheFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached quote snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newCache(ctx, cacheOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := content.NewZenQuotes(store).Clear(ctx); err != nil {
				return err
			}
			printSuccess("Quote snapshot cleared")
			return nil
		},
	}

	cacheOpts.register(cmd)
	return cmd
}
