// Package compose turns diary content into drawn pages.
//
// The Composer owns one page builder per page kind (vision board, year
// goals, month intro, monthly planner, daily page, monthly review). Each
// builder computes geometry through the layout engine and forwards draw
// primitives to the sink, finishing with a page break. The Generator
// sequences the builders into a full year document.
package compose

import (
	"fmt"
	"time"

	"github.com/paperpress/daybook/pkg/content"
	"github.com/paperpress/daybook/pkg/layout"
	"github.com/paperpress/daybook/pkg/sink"
)

const cm = layout.Cm

// Fonts used across the document. Sizes vary per call site.
var (
	helv        = func(size float64) sink.Font { return sink.Font{Family: "Helvetica", Size: size} }
	helvBold    = func(size float64) sink.Font { return sink.Font{Family: "Helvetica", Style: "B", Size: size} }
	helvOblique = func(size float64) sink.Font { return sink.Font{Family: "Helvetica", Style: "I", Size: size} }
	timesItalic = func(size float64) sink.Font { return sink.Font{Family: "Times", Style: "I", Size: size} }
)

// yearGoalCategories structure the year goals page.
var yearGoalCategories = [4]string{
	"Personal Growth & Skills",
	"Career & Business",
	"Health & Wellness",
	"Financial Freedom",
}

// reviewSections head the ruled blocks of the monthly review page.
var reviewSections = [4]string{
	"Biggest Achievement",
	"What I Learned",
	"To Improve",
	"Memorable Moments",
}

// reviewMoods are the circle-one options of the review mood row.
var reviewMoods = [6]string{
	"Energized", "Content", "Stressed", "Productive", "Tired", "Inspired",
}

// dailyPrompts are the right-column blocks of a daily page: title and
// number of ruled lines.
var dailyPrompts = [6]struct {
	Title string
	Lines int
}{
	{"Today's quick wins", 3},
	{"Health & Nutrition", 3},
	{"Grateful for...", 3},
	{"Self Care", 2},
	{"Cycle / Mood", 2},
	{"Affirmation", 2},
}

// Composer draws diary pages onto a sink using A4 geometry from its tuning.
type Composer struct {
	Sink sink.Sink
	Page layout.Page
	Tune Tuning
}

// NewComposer creates a composer drawing to s with the given tuning.
func NewComposer(s sink.Sink, t Tuning) *Composer {
	return &Composer{
		Sink: s,
		Page: layout.A4Page(t.Margin()),
		Tune: t,
	}
}

// wrap breaks text into lines using the tuned glyph-width ratio.
func (c *Composer) wrap(text string, maxWidth, fontSize float64) []string {
	return layout.WrapRatio(text, maxWidth, fontSize, c.Tune.CharWidthRatio)
}

// header draws the standard page title, optionally with a subtitle.
func (c *Composer) header(title, subtitle string) {
	c.Sink.Text(c.Page.Width/2, c.Page.Height-2.5*cm, title, sink.TextStyle{
		Font: helvBold(24), Color: sink.Black, Align: sink.AlignCenter,
	})
	if subtitle != "" {
		c.Sink.Text(c.Page.Width/2, c.Page.Height-3.5*cm, subtitle, sink.TextStyle{
			Font: helv(12), Color: sink.Black, Align: sink.AlignCenter,
		})
	}
}

// VisionBoard draws the annual vision board: an instruction paragraph above
// an empty grid of paste-in boxes.
func (c *Composer) VisionBoard(year int) error {
	c.header(fmt.Sprintf("%d Vision Board", year), "")

	instruction := fmt.Sprintf(
		"Use this space to paint, doodle or cut pictures out of magazines. "+
			"The goal is to create a powerful visualization tool to aid in manifesting "+
			"your dreams. Bring your %d goals to life.", year)

	textStyle := sink.TextStyle{Font: helvOblique(10), Color: sink.DarkGrey, Align: sink.AlignCenter}
	textY := c.Page.Height - 3.5*cm
	for _, line := range c.wrap(instruction, c.Page.Width-2*c.Page.Margin, 10) {
		c.Sink.Text(c.Page.Width/2, textY, line, textStyle)
		textY -= 14
	}

	box := layout.Rect{
		X: c.Page.Margin,
		Y: c.Page.Margin,
		W: c.Page.Width - 2*c.Page.Margin,
		H: c.Page.Height - 6*cm - c.Page.Margin,
	}
	grid, err := layout.NewGrid(box, c.Tune.VisionRows, c.Tune.VisionCols, layout.OriginBottomLeft)
	if err != nil {
		return err
	}

	stroke := sink.StrokeStyle{Width: 0.5, Color: sink.Grey}
	for r := 0; r < grid.Rows; r++ {
		for col := 0; col < grid.Cols; col++ {
			cell := grid.Cell(r, col)
			c.Sink.Rect(cell.X, cell.Y, cell.W, cell.H, stroke)
		}
	}

	c.Sink.PageBreak()
	return nil
}

// YearGoals draws the structured year goals page: four categories, each
// with a block of faint writing lines.
func (c *Composer) YearGoals(year int) error {
	c.header(fmt.Sprintf("%d Year Goals", year), "")

	startY := c.Page.Height - 4.5*cm
	sectionH := (startY - c.Page.Margin) / float64(len(yearGoalCategories))

	titleStyle := sink.TextStyle{Font: helv(15), Color: sink.Black}
	faint := sink.StrokeStyle{Width: 0.5, Color: sink.PaleGrey}

	currentY := startY
	for _, category := range yearGoalCategories {
		c.Sink.Text(c.Page.Margin, currentY, category, titleStyle)

		lineY := currentY - 1.2*cm
		for i := 0; i < 4; i++ {
			c.Sink.Line(c.Page.Margin, lineY, c.Page.Width-c.Page.Margin, lineY, faint)
			lineY -= 0.9 * cm
		}
		currentY -= sectionH
	}

	c.Sink.PageBreak()
	return nil
}

// MonthIntro draws the month opener: calligraphic title, framed seasonal
// image and the inspiration paragraph. A nil image is skipped and the text
// moves up to a fixed fallback position.
func (c *Composer) MonthIntro(month time.Month, inspiration string, img *content.Image) error {
	titleY := c.Page.Height - 4.5*cm
	c.Sink.Text(c.Page.Width/2, titleY, month.String(), sink.TextStyle{
		Font: timesItalic(50), Color: sink.Black, Align: sink.AlignCenter,
	})

	center := c.Page.Width / 2
	c.Sink.Line(center-2*cm, titleY-15, center+2*cm, titleY-15,
		sink.StrokeStyle{Width: 1.5, Color: sink.Black})

	imgY := titleY - 5*cm
	if img != nil {
		displayW := c.Tune.ImageWidthCm * cm
		displayH := displayW * img.Aspect()
		imgX := (c.Page.Width - displayW) / 2
		imgY = titleY - 2*cm - displayH
		c.Sink.Image(imgX, imgY, displayW, displayH, img.Data, img.Format)
	}

	textY := imgY - 2*cm
	c.Sink.Line(center-1*cm, textY+1*cm, center+1*cm, textY+1*cm,
		sink.StrokeStyle{Width: 0.5, Color: sink.Black})

	textStyle := sink.TextStyle{Font: timesItalic(14), Color: sink.Black, Align: sink.AlignCenter}
	for _, line := range c.wrap(inspiration, c.Page.Width-8*cm, 14) {
		c.Sink.Text(center, textY, line, textStyle)
		textY -= 0.8 * cm
	}

	c.Sink.PageBreak()
	return nil
}

// MonthlyPlanner draws the month overview: weekday-labelled calendar grid
// plus a ruled goals block filling the rest of the page.
func (c *Composer) MonthlyPlanner(year int, month time.Month) error {
	c.header(fmt.Sprintf("%s Overview", month), "")

	weeks := MonthWeeks(year, month)
	gridTop := c.Page.Height - 5*cm
	rowH := c.Tune.PlannerRowCm * cm
	gridH := float64(len(weeks)) * rowH

	labelStyle := sink.TextStyle{Font: helvBold(10), Color: sink.Black, Align: sink.AlignCenter}
	colW := (c.Page.Width - 2*c.Page.Margin) / 7
	for i, day := range Weekdays {
		x := c.Page.Margin + float64(i)*colW + colW/2
		c.Sink.Text(x, gridTop+0.5*cm, day, labelStyle)
	}

	box := layout.Rect{X: c.Page.Margin, Y: gridTop - gridH, W: c.Page.Width - 2*c.Page.Margin, H: gridH}
	grid, err := layout.NewGrid(box, len(weeks), 7, layout.OriginTopLeft)
	if err != nil {
		return err
	}

	cellStroke := sink.StrokeStyle{Width: 1, Color: sink.Black}
	dayStyle := sink.TextStyle{Font: helv(10), Color: sink.Black}
	for r, week := range weeks {
		for col, day := range week {
			cell := grid.Cell(r, col)
			c.Sink.Rect(cell.X, cell.Y, cell.W, cell.H, cellStroke)
			if day != 0 {
				c.Sink.Text(cell.X+2, cell.Top()-12, fmt.Sprintf("%d", day), dayStyle)
			}
		}
	}

	noteY := box.Y - 1.5*cm
	c.Sink.Text(c.Page.Margin, noteY, "Key Goals for the Month:", sink.TextStyle{
		Font: helvBold(12), Color: sink.Black,
	})

	flow := layout.NewFlow(c.Page.Margin, c.Page.Width-c.Page.Margin, noteY, c.Page.Margin)
	faint := sink.StrokeStyle{Width: 1, Color: sink.LightGrey}
	rules := int(flow.Remaining() / (0.8 * cm))
	for _, y := range flow.PlaceRuledLines(rules, 0.8*cm) {
		c.Sink.Line(flow.Left(), y, flow.Right(), y, faint)
	}

	c.Sink.PageBreak()
	return nil
}

// DailyPage draws one day: quote banner, date header, hourly schedule on
// the left, prompt blocks on the right and a ruled notes box across the
// bottom.
func (c *Composer) DailyPage(date time.Time, quote content.Quote) error {
	// Quote banner.
	quoteStyle := sink.TextStyle{Font: helvOblique(9), Color: sink.DarkGrey, Align: sink.AlignCenter}
	quoteY := c.Page.Height - 1.2*cm
	lines := c.wrap(fmt.Sprintf("%q", quote.Text), c.Page.Width-4*c.Page.Margin, 9)
	// The schedule, notes label and header need the space below the banner.
	// A runaway quote keeps its first lines and loses the rest.
	scheduleH := float64(c.Tune.HourEnd-c.Tune.HourStart+1) * 0.8 * cm
	limit := int((quoteY - (c.Page.Margin + 1.5*cm + scheduleH + 3*cm)) / 10)
	if limit < 0 {
		limit = 0
	}
	if len(lines) > limit {
		lines = lines[:limit]
	}
	for _, line := range lines {
		c.Sink.Text(c.Page.Width/2, quoteY, line, quoteStyle)
		quoteY -= 10
	}
	c.Sink.Text(c.Page.Width-c.Page.Margin, quoteY, fmt.Sprintf("- %s", quote.Author), sink.TextStyle{
		Font: helvBold(9), Color: sink.DarkGrey, Align: sink.AlignRight,
	})

	// Date header with rule.
	headerY := quoteY - 1.5*cm
	c.Sink.Text(c.Page.Margin, headerY, date.Format("Monday | 02 January 2006"), sink.TextStyle{
		Font: helvBold(18), Color: sink.Black,
	})
	c.Sink.Line(c.Page.Margin, headerY-10, c.Page.Width-c.Page.Margin, headerY-10,
		sink.StrokeStyle{Width: 1, Color: sink.Black})

	startY := headerY - 1.5*cm
	leftW := (c.Page.Width - 2*c.Page.Margin) * c.Tune.ScheduleSplit
	rightX := c.Page.Margin + leftW + 0.5*cm

	// Hourly schedule, left column.
	hourStyle := sink.TextStyle{Font: helv(9), Color: sink.Black}
	faint := sink.StrokeStyle{Width: 1, Color: sink.LightGrey}
	schedule := layout.NewFlow(c.Page.Margin, c.Page.Margin+leftW, startY, c.Page.Margin)
	for h := c.Tune.HourStart; h <= c.Tune.HourEnd; h++ {
		y := schedule.Y()
		c.Sink.Text(schedule.Left(), y, fmt.Sprintf("%02d:00", h), hourStyle)
		c.Sink.Line(schedule.Left()+1.2*cm, y-2, schedule.Right(), y-2, faint)
		schedule.Advance(0.8 * cm)
	}

	// Notes box across the full width below the schedule.
	currY := schedule.Y()
	c.Sink.Text(c.Page.Margin, currY-1*cm, "Notes", sink.TextStyle{
		Font: helvBold(10), Color: sink.Black,
	})
	// A long quote banner can push the schedule low enough that no room is
	// left for notes; the box collapses to zero height instead of inverting.
	rectH := (currY - 1.5*cm) - c.Page.Margin
	if rectH < 0 {
		rectH = 0
	}
	c.Sink.Rect(c.Page.Margin, c.Page.Margin, c.Page.Width-2*c.Page.Margin, rectH,
		sink.StrokeStyle{Width: 1, Color: sink.Grey})

	pale := sink.StrokeStyle{Width: 0.5, Color: sink.PaleGrey}
	notes := layout.NewFlow(c.Page.Margin+0.5*cm, c.Page.Width-c.Page.Margin-0.5*cm,
		c.Page.Margin+rectH, c.Page.Margin+0.3*cm)
	inner := int(notes.Remaining() / (0.8 * cm))
	for _, y := range notes.PlaceRuledLines(inner, 0.8*cm) {
		c.Sink.Line(notes.Left(), y, notes.Right(), y, pale)
	}

	// Prompt blocks, right column.
	promptStyle := sink.TextStyle{Font: helv(9), Color: sink.DarkGrey}
	rY := startY + 0.5*cm
	for _, prompt := range dailyPrompts {
		h := float64(prompt.Lines) * 0.9 * cm
		rY -= h
		c.Sink.Text(rightX, rY+h-10, prompt.Title, promptStyle)
		for i := 1; i <= prompt.Lines; i++ {
			stroke := faint
			if i == prompt.Lines {
				stroke = sink.StrokeStyle{Width: 1, Color: sink.Grey}
			}
			ly := rY + h - float64(i)*0.8*cm
			c.Sink.Line(rightX, ly, c.Page.Width-c.Page.Margin, ly, stroke)
		}
		rY -= 0.2 * cm
	}

	c.Sink.PageBreak()
	return nil
}

// MonthlyReview draws the end-of-month reflection page: four ruled
// sections, a circle-one mood row and a rating box.
func (c *Composer) MonthlyReview(month time.Month) error {
	c.header(fmt.Sprintf("%s Review", month), "Celebrate your wins and reflect on your growth")

	sectionStyle := sink.TextStyle{Font: helvBold(12), Color: sink.Black}
	faint := sink.StrokeStyle{Width: 1, Color: sink.LightGrey}

	y := c.Page.Height - 4.5*cm
	for _, section := range reviewSections {
		c.Sink.Text(c.Page.Margin, y, section, sectionStyle)
		y -= 0.6 * cm
		for i := 0; i < 4; i++ {
			c.Sink.Line(c.Page.Margin, y, c.Page.Width-c.Page.Margin, y, faint)
			y -= 0.9 * cm
		}
		y -= 1 * cm
	}

	c.Sink.Text(c.Page.Margin, y, "How did I feel overall? (Circle one)", sectionStyle)
	y -= 0.8 * cm
	moodStyle := sink.TextStyle{Font: helv(11), Color: sink.Black}
	moodX := c.Page.Margin
	for _, mood := range reviewMoods {
		c.Sink.Text(moodX, y, mood, moodStyle)
		moodX += 3 * cm
	}
	y -= 2 * cm

	c.Sink.Text(c.Page.Margin, y, "Rate this month (1-10):", sectionStyle)
	boxY := y - 0.2*cm
	if boxY < c.Page.Margin {
		boxY = c.Page.Margin
	}
	c.Sink.Rect(c.Page.Margin+5*cm, boxY, 1.5*cm, 1.5*cm,
		sink.StrokeStyle{Width: 1, Color: sink.Black})

	c.Sink.PageBreak()
	return nil
}
