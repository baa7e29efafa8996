package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const sheetStyle = `body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;color:#1f2933}
h1{margin-bottom:0.25rem}.meta{color:#616e7c;font-size:0.9rem}
ol.questions>li{margin:1rem 0}ul.options{list-style:none;padding-left:1rem}
.answer-line{border-bottom:1px solid #9aa5b1;height:1.5rem;width:60%}
section.key{page-break-before:always;margin-top:3rem}`

// SheetPage renders the full worksheet document.
func SheetPage(sheet Sheet) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&b, "<title>%s</title><style>%s</style></head><body>", templ.EscapeString(sheet.Title), sheetStyle)
		fmt.Fprintf(&b, "<h1>%s</h1>", templ.EscapeString(sheet.Title))
		if meta := sheetMeta(sheet); meta != "" {
			fmt.Fprintf(&b, "<p class=\"meta\">%s</p>", templ.EscapeString(meta))
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := QuestionList(sheet.Questions).Render(ctx, w); err != nil {
			return err
		}
		if err := AnswerKey(sheet.Questions).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// QuestionList renders the numbered questions with options or an answer line.
func QuestionList(questions []SheetQuestion) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		start := 1
		if len(questions) > 0 {
			start = questions[0].Number
		}
		fmt.Fprintf(&b, "<ol class=\"questions\" start=\"%d\">", start)
		for _, q := range questions {
			fmt.Fprintf(&b, "<li><p>%s</p>", templ.EscapeString(q.Text))
			if len(q.Options) == 0 {
				b.WriteString("<div class=\"answer-line\"></div>")
			} else {
				b.WriteString("<ul class=\"options\">")
				for _, option := range q.Options {
					fmt.Fprintf(&b, "<li>%s</li>", templ.EscapeString(formatOption(option)))
				}
				b.WriteString("</ul>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ol>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AnswerKey renders the answers section.
func AnswerKey(questions []SheetQuestion) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"key\"><h2>Answer key</h2><dl>")
		for _, q := range questions {
			fmt.Fprintf(&b, "<dt>%d.</dt><dd>%s</dd>", q.Number, templ.EscapeString(strings.Join(q.Answers, " / ")))
		}
		b.WriteString("</dl></section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func sheetMeta(sheet Sheet) string {
	parts := make([]string, 0, 3)
	if sheet.Source != "" {
		parts = append(parts, "Source: "+sheet.Source)
	}
	if ts := formatGeneratedAt(sheet.GeneratedAt); ts != "" {
		parts = append(parts, "Generated "+ts)
	}
	parts = append(parts, fmt.Sprintf("%d questions", len(sheet.Questions)))
	return strings.Join(parts, " · ")
}
