// Package render writes an infographic to one of the rendering surfaces:
// an HTML page, a plain-text listing or JSON.
//
// Surfaces only consume the ordered tiles plus the infographic id and human;
// they never reorder tiles or draw facts.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/roach88/dinograph/internal/app"
	"github.com/roach88/dinograph/internal/dino"
	"github.com/roach88/dinograph/internal/tile"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatHTML}

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// IsValidFormat checks if the format is one of the supported values.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders graph to w in the given format.
func Write(w io.Writer, format string, graph *app.Infographic) error {
	switch format {
	case FormatText:
		return Text(w, graph)
	case FormatJSON:
		return JSON(w, graph)
	case FormatHTML:
		return HTML(w, graph)
	default:
		return fmt.Errorf("unknown format %q: must be one of %v", format, Formats)
	}
}

// HTML writes a standalone page with one grid item per tile.
func HTML(w io.Writer, graph *app.Infographic) error {
	if err := templates.ExecuteTemplate(w, "infographic.html", graph); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Text writes one block per tile.
func Text(w io.Writer, graph *app.Infographic) error {
	h := graph.Human
	if _, err := fmt.Fprintf(w, "Infographic %s\nHuman: %s (%s in, %s lbs, %s)\n",
		graph.ID, h.Name, formatNumber(h.Height), formatNumber(h.Weight), h.Diet); err != nil {
		return err
	}

	for i, t := range graph.Tiles {
		title := t.Title
		if t.Kind == tile.KindHuman {
			title += " (human)"
		}
		if _, err := fmt.Fprintf(w, "\n[%d] %s\n    image: %s\n", i+1, title, t.Image); err != nil {
			return err
		}
		if t.HasFact() {
			if _, err := fmt.Fprintf(w, "    fact:  %s\n", t.FactText()); err != nil {
				return err
			}
		}
	}
	return nil
}

// jsonHuman encodes NaN measurements as null; encoding/json rejects NaN.
type jsonHuman struct {
	Name   string    `json:"name"`
	Height *float64  `json:"height"`
	Weight *float64  `json:"weight"`
	Diet   dino.Diet `json:"diet"`
}

type jsonInfographic struct {
	ID    string      `json:"id"`
	Human jsonHuman   `json:"human"`
	Tiles []tile.Tile `json:"tiles"`
}

// JSON writes the infographic as indented JSON.
func JSON(w io.Writer, graph *app.Infographic) error {
	out := jsonInfographic{
		ID: graph.ID,
		Human: jsonHuman{
			Name:   graph.Human.Name,
			Height: finite(graph.Human.Height),
			Weight: finite(graph.Human.Weight),
			Diet:   graph.Human.Diet,
		},
		Tiles: graph.Tiles,
	}
	if out.Tiles == nil {
		out.Tiles = []tile.Tile{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
