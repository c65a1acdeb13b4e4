package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AnswerRow is one solved (or failed) part.
type AnswerRow struct {
	Day      int
	Title    string
	Part     string // "1" or "2"
	Value    int64
	Err      error
	Cached   bool
	Duration time.Duration
}

const titleWidth = 20

// FormatAnswers prints one line per answer:
//
//	day 03  Gear Ratios           part 1         4,361   0.412 ms
//
// Failed parts print the error in place of the value.
func FormatAnswers(w io.Writer, rows []AnswerRow, opts AnswerOpts) error {
	num := numberFormatter(opts.Locale)
	okColor := color.New(color.FgGreen, color.Bold)
	errColor := color.New(color.FgRed, color.Bold)
	dimColor := color.New(color.Faint)
	for _, c := range []*color.Color{okColor, errColor, dimColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, r := range rows {
		title := runewidth.FillRight(runewidth.Truncate(r.Title, titleWidth, "…"), titleWidth)
		var value string
		if r.Err != nil {
			value = errColor.Sprint("error: " + r.Err.Error())
		} else {
			value = okColor.Sprint(fmt.Sprintf("%14s", num(r.Value)))
		}
		line := fmt.Sprintf("day %02d  %s  part %s  %s", r.Day, title, r.Part, value)
		if opts.Timings && r.Err == nil {
			note := fmt.Sprintf("%9.3f ms", float64(r.Duration)/float64(time.Millisecond))
			if r.Cached {
				note += " (cached)"
			}
			line += "  " + dimColor.Sprint(note)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func numberFormatter(tag language.Tag) func(int64) string {
	if tag == language.Und {
		return func(v int64) string { return strconv.FormatInt(v, 10) }
	}
	p := message.NewPrinter(tag)
	return func(v int64) string { return p.Sprintf("%d", v) }
}

// AnswerJSON is one answer in machine-readable output.
type AnswerJSON struct {
	Day        int     `json:"day"`
	Title      string  `json:"title"`
	Part       string  `json:"part"`
	Answer     *int64  `json:"answer,omitempty"`
	Error      string  `json:"error,omitempty"`
	Cached     bool    `json:"cached,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

// FormatAnswersJSON writes rows as a JSON array.
func FormatAnswersJSON(w io.Writer, rows []AnswerRow) error {
	out := make([]AnswerJSON, 0, len(rows))
	for _, r := range rows {
		aj := AnswerJSON{
			Day:        r.Day,
			Title:      r.Title,
			Part:       r.Part,
			Cached:     r.Cached,
			DurationMS: float64(r.Duration) / float64(time.Millisecond),
		}
		if r.Err != nil {
			aj.Error = r.Err.Error()
		} else {
			v := r.Value
			aj.Answer = &v
		}
		out = append(out, aj)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
