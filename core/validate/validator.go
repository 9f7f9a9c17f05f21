// Package validate checks rendered views for problems that would corrupt
// a raw-mode terminal or stall the draw loop.
package validate

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pondworks-lib/frogread/core"
)

type Code string

const (
	// Errors
	CodeEmptyView       Code = "FROG003"
	CodeViewHasBadRunes Code = "FROG005"
	CodeViewPanic       Code = "FROG006"
	CodeViewHasControl  Code = "FROG011"

	// Warnings
	CodeViewVeryLarge  Code = "FROG101"
	CodeViewSuspicious Code = "FROG102"
	CodeSlowView       Code = "FROG104"
	CodeViewTooWide    Code = "FROG109"
)

const (
	slowView    = 200 * time.Millisecond
	viewTimeout = 500 * time.Millisecond
	largeView   = 2_000_000
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

type Issue struct {
	Code       Code
	Severity   Severity
	Subject    string
	Summary    string
	Detail     string
	Suggestion string
}

func (i Issue) String() string {
	sb := strings.Builder{}
	sb.WriteString(string(i.Code))
	sb.WriteByte(' ')
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Subject != "" {
		sb.WriteString(i.Subject)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Summary)
	if i.Detail != "" {
		sb.WriteString("\n  - ")
		sb.WriteString(i.Detail)
	}
	if i.Suggestion != "" {
		sb.WriteString("\n  → ")
		sb.WriteString(i.Suggestion)
	}
	return sb.String()
}

// Report collects issues. It is an error when non-empty.
type Report struct {
	issues []Issue
}

func (r *Report) Add(it Issue)    { r.issues = append(r.issues, it) }
func (r *Report) Merge(o *Report) { r.issues = append(r.issues, o.issues...) }
func (r *Report) Len() int        { return len(r.issues) }

// Issues returns the issues sorted errors first, then by code.
func (r *Report) Issues() []Issue {
	out := append([]Issue(nil), r.issues...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity < out[j].Severity
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func (r *Report) HasErrors() bool {
	for _, it := range r.issues {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Error reports the most severe issue only; Format prints all of them.
func (r *Report) Error() string {
	if len(r.issues) == 0 {
		return ""
	}
	return "view validation failed: " + r.Issues()[0].String()
}

// Format renders every issue grouped by severity, coloured through p.
func (r *Report) Format(p *core.Palette) string {
	if len(r.issues) == 0 {
		return p.Fg(core.ColorGreen).Render("no issues found")
	}
	bold := p.Plain().Bold(true)
	red := p.Fg(core.ColorRed)
	yellow := p.Fg(core.ColorYellow)

	sb := strings.Builder{}
	sb.WriteString(bold.Render("view validation failed:"))
	sb.WriteByte('\n')

	section := func(title string, sev Severity, st func(string) string) {
		var lines []string
		for _, it := range r.Issues() {
			if it.Severity == sev {
				lines = append(lines, " - "+st(it.String()))
			}
		}
		if len(lines) == 0 {
			return
		}
		sb.WriteString(bold.Render(st(title)))
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteByte('\n')
	}
	section("Errors:", SeverityError, func(s string) string { return red.Render(s) })
	section("Warnings:", SeverityWarning, func(s string) string { return yellow.Render(s) })

	return strings.TrimRight(sb.String(), "\n")
}

// timeoutErr distinguishes a stalled view from one that failed.
type timeoutErr struct{ what string }

func (e timeoutErr) Error() string { return e.what }

// View runs view once with panic recovery and a timeout, then checks what
// it returned against frame f. subject names the state being rendered.
func View(subject string, f core.Frame, view func() string) *Report {
	rep := &Report{}
	add := func(it Issue) {
		it.Subject = subject
		rep.Add(it)
	}

	out, elapsed, err := safeCallView(view)
	switch e := err.(type) {
	case nil:
	case timeoutErr:
		add(Issue{
			Code:       CodeSlowView,
			Severity:   SeverityWarning,
			Summary:    fmt.Sprintf("view exceeded %v", viewTimeout),
			Detail:     e.Error(),
			Suggestion: "Keep the view pure; it runs once per tick.",
		})
		return rep
	default:
		add(Issue{
			Code:       CodeViewPanic,
			Severity:   SeverityError,
			Summary:    "view encountered an unexpected error",
			Detail:     e.Error(),
			Suggestion: "The view must handle zero and empty segments safely.",
		})
		return rep
	}

	if out == "" {
		add(Issue{
			Code:       CodeEmptyView,
			Severity:   SeverityError,
			Summary:    "view returned an empty string",
			Suggestion: "A blank screen is not allowed; keep at least one segment non-empty.",
		})
	} else if strings.TrimSpace(core.StripANSI(out)) == "" {
		add(Issue{
			Code:     CodeViewSuspicious,
			Severity: SeverityWarning,
			Summary:  "view renders only whitespace",
		})
	}
	if !utf8.ValidString(out) {
		add(Issue{
			Code:       CodeViewHasBadRunes,
			Severity:   SeverityError,
			Summary:    "view returned invalid UTF-8",
			Suggestion: "Ensure every segment is valid UTF-8.",
		})
	}
	if r, ok := firstControl(out); ok {
		add(Issue{
			Code:       CodeViewHasControl,
			Severity:   SeverityError,
			Summary:    "view contains a control character",
			Detail:     fmt.Sprintf("rune %U", r),
			Suggestion: "Control characters move the cursor in raw mode; strip them from segments.",
		})
	}
	if !f.Empty() {
		for i, line := range strings.Split(out, "\n") {
			if w := core.DisplayWidth(line); w > f.Width {
				add(Issue{
					Code:     CodeViewTooWide,
					Severity: SeverityWarning,
					Summary:  fmt.Sprintf("row %d is wider than the frame", i+1),
					Detail:   fmt.Sprintf("width=%d frame=%d", w, f.Width),
				})
			}
		}
	}
	if len(out) > largeView {
		add(Issue{
			Code:     CodeViewVeryLarge,
			Severity: SeverityWarning,
			Summary:  "view returned an extremely large string",
			Detail:   fmt.Sprintf("size=%d bytes", len(out)),
		})
	}
	if elapsed > slowView {
		add(Issue{
			Code:     CodeSlowView,
			Severity: SeverityWarning,
			Summary:  fmt.Sprintf("view is slow (took %v)", elapsed),
		})
	}
	return rep
}

// firstControl finds a control rune other than newline and ESC, which
// styled output needs.
func firstControl(s string) (rune, bool) {
	for _, r := range s {
		if r != '\n' && r != '\x1b' && r != utf8.RuneError && unicode.IsControl(r) {
			return r, true
		}
	}
	return 0, false
}

func safeCallView(view func() string) (out string, elapsed time.Duration, err error) {
	start := time.Now()
	done := make(chan struct{})
	var res string
	var callErr error

	go func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = enrichError(r)
			}
			close(done)
		}()
		res = view()
	}()

	select {
	case <-done:
		return res, time.Since(start), callErr
	case <-time.After(viewTimeout):
		return "", viewTimeout, timeoutErr{what: fmt.Sprintf("view timed out (>%v)", viewTimeout)}
	}
}

func enrichError(r any) error {
	return fmt.Errorf("unexpected error: %v (%s)", r, findCaller(5))
}

func findCaller(skip int) string {
	pc := make([]uintptr, 8)
	n := runtime.Callers(skip, pc)
	frames := runtime.CallersFrames(pc[:n])
	f, _ := frames.Next()
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}
