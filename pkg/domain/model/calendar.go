package model

import (
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
)

// MonthGrid bundles the cells and highlights of one rendered month
type MonthGrid struct {
	Config     GridConfig      `json:"-"`
	Title      string          `json:"title"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	DayNames   []types.Weekday `json:"day_names"`
	WeekCount  int             `json:"week_count"`
	Cells      []DayCell       `json:"cells"`
	Highlights []HighlightCell `json:"highlights"`
}

// YearCalendar holds the twelve month grids of one year together with
// the annotated dates they were built from
type YearCalendar struct {
	Year        int          `json:"year"`
	Months      []*MonthGrid `json:"months"`
	Annotations []Annotation `json:"annotations,omitempty"`
}
