package compose

import (
	"github.com/BurntSushi/toml"

	"github.com/paperpress/daybook/pkg/errors"
	"github.com/paperpress/daybook/pkg/layout"
)

// Tuning holds the visually calibrated layout constants of the document.
// Every value has a default matching the printed reference diary; a TOML
// file can override individual fields without restating the rest.
type Tuning struct {
	// CharWidthRatio is the average glyph width as a fraction of font size,
	// used by the text wrapper.
	CharWidthRatio float64 `toml:"char_width_ratio"`

	// MarginCm is the uniform page margin in centimeters.
	MarginCm float64 `toml:"margin_cm"`

	// HourStart and HourEnd bound the daily schedule column, inclusive.
	HourStart int `toml:"hour_start"`
	HourEnd   int `toml:"hour_end"`

	// VisionRows and VisionCols shape the vision board grid.
	VisionRows int `toml:"vision_rows"`
	VisionCols int `toml:"vision_cols"`

	// ImageWidthCm is the display width of the month intro image.
	ImageWidthCm float64 `toml:"image_width_cm"`

	// PlannerRowCm is the height of one calendar week row.
	PlannerRowCm float64 `toml:"planner_row_cm"`

	// ScheduleSplit is the fraction of the content width given to the
	// daily schedule column; the rest holds the prompts.
	ScheduleSplit float64 `toml:"schedule_split"`
}

// DefaultTuning returns the calibrated defaults.
func DefaultTuning() Tuning {
	return Tuning{
		CharWidthRatio: layout.DefaultCharWidthRatio,
		MarginCm:       1.5,
		HourStart:      6,
		HourEnd:        23,
		VisionRows:     4,
		VisionCols:     3,
		ImageWidthCm:   16,
		PlannerRowCm:   2.5,
		ScheduleSplit:  0.55,
	}
}

// LoadTuning reads a TOML override file on top of the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load tuning file %s", path)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tuning values that would break layout arithmetic.
func (t Tuning) Validate() error {
	switch {
	case t.CharWidthRatio <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "char_width_ratio must be positive")
	case t.MarginCm <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "margin_cm must be positive")
	case t.HourStart < 0 || t.HourEnd > 23 || t.HourStart > t.HourEnd:
		return errors.New(errors.ErrCodeInvalidInput, "hour range %d..%d is not a valid span", t.HourStart, t.HourEnd)
	case t.VisionRows <= 0 || t.VisionCols <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "vision grid needs positive dimensions")
	case t.ImageWidthCm <= 0 || t.PlannerRowCm <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "image and planner sizes must be positive")
	case t.ScheduleSplit <= 0 || t.ScheduleSplit >= 1:
		return errors.New(errors.ErrCodeInvalidInput, "schedule_split must be between 0 and 1")
	}
	return nil
}

// Margin returns the page margin in points.
func (t Tuning) Margin() float64 { return t.MarginCm * layout.Cm }
