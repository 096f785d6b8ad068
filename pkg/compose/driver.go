package compose

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/paperpress/daybook/pkg/content"
)

// Sources bundles the external content providers of a generation run. Any
// of them may be nil; the generator then uses the deterministic fallback
// for that content kind.
type Sources struct {
	Quotes      content.QuoteSource
	Inspiration content.InspirationSource
	Images      content.ImageSource
}

// Generator sequences the page builders into a full year document:
// vision board, year goals, then per month an intro, a planner, one page
// per day and a review.
//
// Content failures never abort a run. A failed quote fetch falls back to
// the filler quote, failed inspiration to the fixed welcome sentence, and
// a failed image download skips the image. Only context cancellation and
// layout errors stop generation.
type Generator struct {
	Composer *Composer
	Sources  Sources
	Logger   *log.Logger

	// OnPage, when set, is called after each completed page with the
	// number of pages done and the total for the run.
	OnPage func(done, total int)

	// TestMode restricts the run to January and its first day, for fast
	// layout verification.
	TestMode bool
}

// PageCount returns the number of pages a run will produce: two front
// pages plus three month pages and one page per day.
func PageCount(year int, testMode bool) int {
	if testMode {
		return 2 + 3 + 1
	}
	return 2 + 12*3 + DaysInYear(year)
}

// Run generates the complete document for the given year onto the
// composer's sink. The caller serializes the sink afterwards.
func (g *Generator) Run(ctx context.Context, year int) error {
	logger := g.logger()
	total := PageCount(year, g.TestMode)
	done := 0
	page := func() {
		done++
		if g.OnPage != nil {
			g.OnPage(done, total)
		}
	}

	quotes := g.fetchQuotes(ctx, year)
	quoteIdx := 0

	if err := g.Composer.VisionBoard(year); err != nil {
		return err
	}
	page()
	if err := g.Composer.YearGoals(year); err != nil {
		return err
	}
	page()

	months := 12
	if g.TestMode {
		logger.Info("test mode active, generating January day 1 only")
		months = 1
	}

	for m := 1; m <= months; m++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		month := time.Month(m)
		logger.Info("composing month", "month", month.String())

		inspiration, img := g.fetchMonthContent(ctx, month, year)
		if err := g.Composer.MonthIntro(month, inspiration, img); err != nil {
			return err
		}
		page()

		if err := g.Composer.MonthlyPlanner(year, month); err != nil {
			return err
		}
		page()

		days := DaysIn(year, month)
		if g.TestMode {
			days = 1
		}
		for day := 1; day <= days; day++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			quote := quotes[quoteIdx%len(quotes)]
			quoteIdx++
			if err := g.Composer.DailyPage(date, quote); err != nil {
				return err
			}
			page()
		}

		if err := g.Composer.MonthlyReview(month); err != nil {
			return err
		}
		page()
	}

	logger.Info("document composed", "pages", done)
	return nil
}

// fetchQuotes returns one quote per day of the year, falling back to the
// filler quote when the source fails or is missing.
func (g *Generator) fetchQuotes(ctx context.Context, year int) []content.Quote {
	count := DaysInYear(year)
	if g.TestMode {
		count = 1
	}
	if g.Sources.Quotes == nil {
		return fillQuotes(count)
	}

	quotes, err := g.Sources.Quotes.Quotes(ctx, count)
	if err != nil || len(quotes) == 0 {
		g.logger().Warn("quote source failed, using filler", "err", err)
		return fillQuotes(count)
	}
	return quotes
}

// fetchMonthContent resolves the intro page content for one month, applying
// fallbacks per kind.
func (g *Generator) fetchMonthContent(ctx context.Context, month time.Month, year int) (string, *content.Image) {
	logger := g.logger()

	inspiration := content.FallbackInspiration(month.String())
	if g.Sources.Inspiration != nil {
		text, err := g.Sources.Inspiration.MonthInspiration(ctx, month.String(), year)
		if err != nil {
			logger.Debug("inspiration unavailable", "month", month.String(), "err", err)
		} else {
			inspiration = text
		}
	}

	var img *content.Image
	if g.Sources.Images != nil {
		fetched, err := g.Sources.Images.MonthImage(ctx, month.String())
		if err != nil {
			logger.Warn("image unavailable, skipping", "month", month.String(), "err", err)
		} else if framed, err := content.MuseumFrame(fetched); err != nil {
			logger.Warn("framing failed, using raw image", "month", month.String(), "err", err)
			img = fetched
		} else {
			img = framed
		}
	}

	return inspiration, img
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}

func fillQuotes(count int) []content.Quote {
	quotes := make([]content.Quote, count)
	for i := range quotes {
		quotes[i] = content.FallbackQuote
	}
	return quotes
}
