package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/catalog"
)

func init() {
	color.NoColor = true
}

var dir = catalog.NewDirectory([]catalog.Category{{ID: 1, Name: "Fire"}, {ID: 2, Name: "Flying"}})

func TestEntriesIncludesCategoryNames(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}

	pp.Entries(dir, catalog.Entry{ID: 6, Name: "Charizard", CategoryIDs: []int{1, 2, 99}})

	out := buf.String()
	for _, want := range []string{"#006", "Charizard", "Fire, Flying"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEmptyListsPrintNone(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Categories()
	pp.Entries(dir)

	if got := strings.Count(buf.String(), "none"); got != 2 {
		t.Fatalf("expected two none markers, got %d:\n%s", got, buf.String())
	}
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 20}

	pp.Detail(dir, catalog.Entry{
		ID:          4,
		Name:        "Charmander",
		CategoryIDs: []int{1},
		Attack:      "52",
		Defense:     "43",
		HP:          39,
		Description: "Obviously prefers hot places. When it rains, steam is said to spout from the tip of its tail.",
	})

	out := buf.String()
	for _, want := range []string{"#004 Charmander", "Fire", "52", "43", "39 (tranqui)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Obviously") && len(line) > 20 {
			t.Fatalf("expected description wrapped at 20, got %q", line)
		}
	}
}

func TestSuggestions(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Suggestions("charmandr", []string{"Charmander"})
	if !strings.Contains(buf.String(), "did you mean: Charmander") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.TitleWithCount("Types", 1, "type", "types")
	pp.TitleWithCount("Types", 3, "type", "types")

	want := "Types - 1 type\nTypes - 3 types\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
