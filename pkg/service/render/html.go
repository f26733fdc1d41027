package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/calendar.html.tmpl
var templateFS embed.FS

// HTML renders a year calendar as a self-contained HTML document with
// CSS hover tooltips on the highlighted days
type HTML struct {
	tmpl *template.Template
}

// NewHTML creates the HTML renderer
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/calendar.html.tmpl")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse calendar template")
	}
	return &HTML{tmpl: tmpl}, nil
}

// htmlCell is one table cell of the rendered grid
type htmlCell struct {
	Day     int
	Class   string
	Tooltip string
}

// htmlMonth is the view of one month table
type htmlMonth struct {
	Title    string
	DayNames []types.Weekday
	Weeks    [][]htmlCell
}

// htmlDocument is the template root
type htmlDocument struct {
	Title  string
	Year   int
	Months []htmlMonth
}

// Render writes the document
func (r *HTML) Render(w io.Writer, cal *model.YearCalendar) error {
	doc := htmlDocument{
		Title: fmt.Sprintf("Calendar %d", cal.Year),
		Year:  cal.Year,
	}
	for _, m := range cal.Months {
		doc.Months = append(doc.Months, viewOfMonth(m))
	}

	if err := r.tmpl.Execute(w, doc); err != nil {
		return goerr.Wrap(err, "failed to render calendar document")
	}
	return nil
}

func viewOfMonth(m *model.MonthGrid) htmlMonth {
	type cellKey struct {
		week    int
		weekday types.Weekday
	}
	tooltips := make(map[cellKey]string, len(m.Highlights))
	for _, h := range m.Highlights {
		tooltips[cellKey{h.WeekIndex, h.Weekday}] = h.Label
	}

	view := htmlMonth{
		Title:    m.Title,
		DayNames: m.DayNames,
		Weeks:    make([][]htmlCell, m.WeekCount),
	}
	for i, c := range m.Cells {
		cell := htmlCell{Day: c.Day, Class: "workday"}
		if c.IsWeekend {
			cell.Class = "weekend"
		}
		if label, ok := tooltips[cellKey{c.WeekIndex, c.Weekday}]; ok {
			cell.Class = "holiday"
			cell.Tooltip = label
		}
		view.Weeks[i/7] = append(view.Weeks[i/7], cell)
	}
	return view
}
