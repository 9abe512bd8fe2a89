package form

import (
	"github.com/iwvelando/salary-calculator/internal/salary"
	"github.com/iwvelando/salary-calculator/pkg/format"
)

// FieldView is what a renderer shows for one input field.
type FieldView struct {
	Path    string `json:"path"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Value   int64  `json:"value"`
	Display string `json:"display"`
	Reading string `json:"reading,omitempty"`
	Message string `json:"message,omitempty"`
}

// ResultView holds the derived figures formatted for display.
type ResultView struct {
	TotalHours string `json:"totalHours"`
	Monthly    string `json:"monthly"`
	Hourly     string `json:"hourly"`
	Annual     string `json:"annual"`
}

// View is the complete rendering state of a session.
type View struct {
	Fields    []FieldView   `json:"fields"`
	Result    salary.Result `json:"result"`
	Formatted ResultView    `json:"formatted"`
	Messages  []string      `json:"messages"`
}

// Field returns the view of the field at path.
func (v View) Field(path string) (FieldView, bool) {
	for _, f := range v.Fields {
		if f.Path == path {
			return f, true
		}
	}
	return FieldView{}, false
}

// View renders the current state of the session.
func (s *Session) View() View {
	fields := salary.Fields()
	views := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		value, _ := s.input.Value(f.Path)
		fv := FieldView{
			Path:    f.Path,
			Label:   f.Label,
			Value:   value,
			Message: s.violations.For(f.Path),
		}
		switch f.Kind {
		case salary.KindHours:
			fv.Kind = "hours"
			fv.Display = format.Plain(value)
		default:
			fv.Kind = "amount"
			fv.Display = format.Grouped(value)
			fv.Reading = format.JapaneseReading(value)
		}
		views = append(views, fv)
	}

	messages := s.violations.Messages()
	if messages == nil {
		messages = []string{}
	}

	r := s.result
	return View{
		Fields: views,
		Result: r,
		Formatted: ResultView{
			TotalHours: format.Hours(r.TotalHours),
			Monthly:    format.YenRange(r.MonthlyMin, r.MonthlyMax),
			Hourly:     format.YenRange(r.HourlyMin, r.HourlyMax),
			Annual:     format.YenRange(r.AnnualMin, r.AnnualMax),
		},
		Messages: messages,
	}
}
