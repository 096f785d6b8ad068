package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paperpress/daybook/pkg/cache"
	"github.com/paperpress/daybook/pkg/compose"
	"github.com/paperpress/daybook/pkg/content"
	"github.com/paperpress/daybook/pkg/errors"
	"github.com/paperpress/daybook/pkg/layout"
	"github.com/paperpress/daybook/pkg/sink"
)

// generateCommand creates the generate command, the main entry point of the
// tool.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output     string
		offline    bool
		testMode   bool
		tuningPath string
		noProgress bool
		cacheOpts  cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "generate [year]",
		Short: "Compose and write the diary PDF for a year",
		Long: `Generate composes the full diary for the given year and writes it as a
PDF. Without a year argument the upcoming calendar year is used.

Quotes, monthly images and inspiration texts are fetched from the web and
cached; --offline skips all network access and uses cached content plus
deterministic fallbacks instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year() + 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return errors.New(errors.ErrCodeInvalidInput, "invalid year %q", args[0])
				}
				year = parsed
			}
			if output == "" {
				output = fmt.Sprintf("%d_Diary.pdf", year)
			}

			tune := compose.DefaultTuning()
			if tuningPath != "" {
				var err error
				if tune, err = compose.LoadTuning(tuningPath); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			runID := uuid.NewString()[:8]
			c.Logger.Info("starting generation", "run", runID, "year", year, "pages", compose.PageCount(year, testMode))

			store, err := newCache(ctx, cacheOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			pdf := sink.NewPDF(layout.A4Page(tune.Margin()))
			gen := &compose.Generator{
				Composer: compose.NewComposer(pdf, tune),
				Sources:  newSources(store, offline),
				Logger:   c.Logger,
				TestMode: testMode,
			}

			track := newProgress(c.Logger)
			if noProgress {
				err = gen.Run(ctx, year)
			} else {
				err = runWithProgress(ctx, gen, year)
			}
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "create output file")
			}
			defer f.Close()
			if err := pdf.Output(f); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write PDF")
			}

			track.done(fmt.Sprintf("Generated %d pages", pdf.PageCount()))
			printSuccess("Diary for %d written", year)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <year>_Diary.pdf)")
	cmd.Flags().BoolVar(&offline, "offline", false, "skip all network access, use cached content and fallbacks")
	cmd.Flags().BoolVar(&testMode, "test-mode", false, "generate January day 1 only, for fast layout checks")
	cmd.Flags().StringVar(&tuningPath, "tuning", "", "TOML file overriding layout tuning values")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the interactive progress display")
	cacheOpts.register(cmd)

	return cmd
}

// newSources wires the content providers. Offline runs keep the quote
// source (it serves its cached snapshot) but drop the image and
// inspiration sources entirely so no request is ever attempted.
func newSources(store cache.Cache, offline bool) compose.Sources {
	quotes := content.NewZenQuotes(store)
	quotes.Offline = offline
	if offline {
		return compose.Sources{Quotes: quotes}
	}
	return compose.Sources{
		Quotes:      quotes,
		Inspiration: content.NewOpenRouter(store, os.Getenv(openRouterKeyEnv)),
		Images:      content.NewLoremFlickr(store),
	}
}

// runWithProgress drives the generator under the bubbletea progress bar.
// Quitting the UI cancels the run.
func runWithProgress(ctx context.Context, gen *compose.Generator, year int) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := compose.PageCount(year, gen.TestMode)
	prog := tea.NewProgram(NewProgressModel(fmt.Sprintf("Composing %d diary", year), total))

	gen.OnPage = func(done, total int) {
		prog.Send(pageMsg{Done: done, Total: total})
	}

	errCh := make(chan error, 1)
	go func() {
		err := gen.Run(runCtx, year)
		prog.Send(runDoneMsg{Err: err})
		errCh <- err
	}()

	final, uiErr := prog.Run()
	if m, ok := final.(ProgressModel); ok && m.Aborted() {
		cancel()
		<-errCh
		return errors.New(errors.ErrCodeInternal, "generation aborted")
	}
	if runErr := <-errCh; runErr != nil {
		return runErr
	}
	return uiErr
}
