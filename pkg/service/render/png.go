package render

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PNG renders a year calendar as a raster image, three month panels
// per row
type PNG struct {
	fontPath string
}

// NewPNG creates the PNG renderer. fontPath may be empty, falling back
// to the built-in bitmap face.
func NewPNG(fontPath string) *PNG {
	return &PNG{fontPath: fontPath}
}

const (
	panelSize   = 300.0
	panelMargin = 20.0
	cellGap     = 3.0
	headerSpace = 50.0
)

// Colors follow the original scheme: linen workdays, lightsteelblue
// weekends, pink holidays with an indianred border.
const (
	colorWorkday  = "#FAF0E6"
	colorWeekend  = "#B0C4DE"
	colorHoliday  = "#FFC0CB"
	colorHiBorder = "#CD5C5C"
	colorBorder   = "#C0C0C0"
	colorTitle    = "#556B2F"
	colorText     = "#202020"
)

// Render writes the image
func (r *PNG) Render(w io.Writer, cal *model.YearCalendar) error {
	cols := 3
	rows := (len(cal.Months) + cols - 1) / cols
	if rows == 0 {
		return goerr.New("calendar has no months to render")
	}

	width := int(panelMargin + float64(cols)*(panelSize+panelMargin))
	height := int(panelMargin + float64(rows)*(panelSize+panelMargin))

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, 13); err != nil {
			return goerr.Wrap(err, "failed to load font face",
				goerr.V("path", r.fontPath))
		}
	}

	for i, m := range cal.Months {
		x := panelMargin + float64(i%cols)*(panelSize+panelMargin)
		y := panelMargin + float64(i/cols)*(panelSize+panelMargin)
		r.drawMonth(dc, m, x, y)
	}

	if err := dc.EncodePNG(w); err != nil {
		return goerr.Wrap(err, "failed to encode PNG")
	}
	return nil
}

func (r *PNG) drawMonth(dc *gg.Context, m *model.MonthGrid, x, y float64) {
	dc.SetHexColor(colorTitle)
	dc.DrawStringAnchored(m.Title, x+panelSize/2, y+14, 0.5, 0.5)

	cellW := (panelSize - 6*cellGap) / 7
	gridTop := y + headerSpace
	cellH := (panelSize - headerSpace + cellGap - float64(m.WeekCount)*cellGap) / float64(m.WeekCount)

	// Weekday header row
	dc.SetHexColor(colorText)
	for col, name := range m.DayNames {
		cx := x + float64(col)*(cellW+cellGap) + cellW/2
		dc.DrawStringAnchored(name.String(), cx, gridTop-12, 0.5, 0.5)
	}

	type cellKey struct {
		week    int
		weekday types.Weekday
	}
	highlighted := make(map[cellKey]bool, len(m.Highlights))
	for _, h := range m.Highlights {
		highlighted[cellKey{h.WeekIndex, h.Weekday}] = true
	}

	for i, c := range m.Cells {
		col := i % 7
		cx := x + float64(col)*(cellW+cellGap)
		cy := gridTop + float64(c.WeekIndex)*(cellH+cellGap)

		fill, border := colorWorkday, colorBorder
		if c.IsWeekend {
			fill = colorWeekend
		}
		if highlighted[cellKey{c.WeekIndex, c.Weekday}] {
			fill, border = colorHoliday, colorHiBorder
		}

		dc.DrawRectangle(cx, cy, cellW, cellH)
		dc.SetHexColor(fill)
		dc.FillPreserve()
		dc.SetHexColor(border)
		dc.SetLineWidth(1)
		dc.Stroke()

		if c.Day != 0 {
			dc.SetHexColor(colorText)
			dc.DrawStringAnchored(strconv.Itoa(c.Day), cx+cellW/2, cy+cellH/2, 0.5, 0.5)
		}
	}
}
