package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/pokedex/pkg/catalog"
)

// PrettyPrint renders catalog data for the terminal.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Width wraps descriptions; 0 means 72.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, one, many string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+one)
	default:
		_, _ = c.Fprintln(pp.out(), " "+many)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Categories prints one category per row.
func (pp *PrettyPrint) Categories(categories ...catalog.Category) {
	if len(categories) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range categories {
		if pp.ShowID {
			tbl.AddRow(y.Sprint(strconv.Itoa(c.ID)), c.Name)
		} else {
			tbl.AddRow(c.Name)
		}
	}
	if pp.ShowID {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entries prints one entry per row with its resolved category names.
func (pp *PrettyPrint) Entries(dir *catalog.Directory, entries ...catalog.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		types := f.Sprint(strings.Join(dir.CategoryNames(e), ", "))
		if pp.ShowID {
			tbl.AddRow(y.Sprintf("#%03d", e.ID), e.Name, types)
		} else {
			tbl.AddRow(e.Name, types)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Detail prints everything known about a single entry.
func (pp *PrettyPrint) Detail(dir *catalog.Directory, e catalog.Entry) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	pp.Title(fmt.Sprintf("#%03d %s", e.ID, e.Name))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Types"), strings.Join(dir.CategoryNames(e), ", "))
	tbl.AddRow(bold.Sprint("Attack"), e.Attack)
	tbl.AddRow(bold.Sprint("Defense"), e.Defense)
	tbl.AddRow(bold.Sprint("HP"), fmt.Sprintf("%d (%s)", e.HP, catalog.Level(e.HP)))
	if e.ImageURL != "" {
		tbl.AddRow(bold.Sprint("Image"), faint.Sprint(e.ImageURL))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if desc := strings.TrimSpace(e.Description); desc != "" {
		width := pp.Width
		if width <= 0 {
			width = 72
		}
		pp.NewLine()
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(desc, width))
	}
	pp.NewLine()
}

// Suggestions prints "did you mean" hints for an unknown name.
func (pp *PrettyPrint) Suggestions(query string, names []string) {
	r := color.New(color.FgRed)
	_, _ = r.Fprintf(pp.out(), "no entry named %q\n", query)
	if len(names) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "did you mean: %s\n", strings.Join(names, ", "))
}
