package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/chain-dashboard/internal/dashboard"
)

// KeyHelp lists the interactive triggers shown under the live panel.
const KeyHelp = "[r] refresh  [c] connect wallet  [y] copy address  [q] quit"

// Panel is the terminal rendering surface for the dashboard. It keeps the
// latest text of every field and the last notification.
//
// A live panel redraws the whole screen on every update, the way `top`
// does; a static panel only draws when Format is called.
type Panel struct {
	mu       sync.Mutex
	w        io.Writer
	live     bool
	title    string
	interval time.Duration
	values   map[dashboard.Field]string
	notice   string
	now      func() time.Time
}

// NewPanel returns a panel writing to w. Pass live=true for the
// interactive watch loop.
func NewPanel(w io.Writer, title string, interval time.Duration, live bool) *Panel {
	return &Panel{
		w:        w,
		live:     live,
		title:    title,
		interval: interval,
		values:   make(map[dashboard.Field]string),
		now:      time.Now,
	}
}

func (p *Panel) Set(field dashboard.Field, text string) {
	p.SetAll(map[dashboard.Field]string{field: text})
}

// SetAll applies several fields and redraws once.
func (p *Panel) SetAll(values map[dashboard.Field]string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for f, v := range values {
		p.values[f] = v
	}
	p.redrawLocked()
}

// Notify replaces the notice line. Static panels print it immediately since
// they may never redraw.
func (p *Panel) Notify(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notice = msg
	if !p.live {
		fmt.Fprintf(p.w, "%s %s\n", yellow("!"), msg)
		return
	}
	p.redrawLocked()
}

// Value returns the current text of a field.
func (p *Panel) Value(field dashboard.Field) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[field]
}

// Format writes the panel to w.
func (p *Panel) Format(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.formatLocked(w)
}

func (p *Panel) redrawLocked() {
	if !p.live {
		return
	}
	Clear(p.w)
	_ = p.formatLocked(p.w)
}

func (p *Panel) formatLocked(w io.Writer) error {
	header := fmt.Sprintf("%s  %s", bold(p.title), dim(p.now().Format("15:04:05")))
	if p.interval > 0 {
		header += dim(fmt.Sprintf(" (refresh: %s)", p.interval))
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, cyan(strings.Repeat("─", 60)))
	fmt.Fprintln(w, colorStatus(p.values[dashboard.FieldStatus]))
	fmt.Fprintln(w)

	tbl := table.New("Field", "Value").WithWriter(w)
	tbl.WithHeaderFormatter(color.New(color.FgCyan, color.Underline).SprintfFunc())
	tbl.WithFirstColumnFormatter(color.New(color.FgCyan).SprintfFunc())
	for _, f := range dashboard.Fields[1:] {
		v := p.values[f]
		if v == "" {
			v = dashboard.Unset
		}
		tbl.AddRow(f.String(), colorValue(v))
	}
	tbl.Print()

	if p.notice != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", yellow("!"), p.notice)
	}
	if p.live {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dim(KeyHelp))
	}
	return nil
}

func colorStatus(status string) string {
	switch {
	case status == "":
		return dim(dashboard.Unset)
	case status == dashboard.StatusOK:
		return green(status)
	case strings.HasPrefix(status, dashboard.StatusErrorPrefix):
		return red(status)
	default:
		return yellow(status)
	}
}

func colorValue(v string) string {
	switch v {
	case dashboard.ErrorMarker:
		return red(v)
	case dashboard.NotAvailable, dashboard.Unset, dashboard.NotConnected, dashboard.ReceivePrompt:
		return dim(v)
	default:
		return v
	}
}
