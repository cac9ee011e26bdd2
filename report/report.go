// Package report writes the steps of a pattern for people (text) or for other
// programs (yaml).
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/adammck/footwork/math2d"
	"github.com/adammck/footwork/pattern"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

var Formats = []Format{Text, YAML}

// ParseFormat returns the named format. Case is ignored.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, ff := range Formats {
		if f == ff {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (expected text or yaml)", s)
}

// Write renders every step of the pattern to w in the given format.
func Write(w io.Writer, f Format, p *pattern.Pattern) error {
	switch f {
	case Text, "":
		return WriteText(w, p.Steps())

	case YAML:
		return WriteYAML(w, p)
	}

	return fmt.Errorf("unknown format %q", f)
}

// WriteText writes the steps like:
//
//	Initial position: left (-1.00, -1.00) right (0.00, 0.00)
//
//	Kicking north
//	After front-leg swing kick. left (-1.00, -1.00) right (-1.00, 0.41)
//	After spinning side kick. left (-2.00, 1.41) right (-1.00, 0.41)
//
// with a blank line after each direction.
func WriteText(w io.Writer, steps []pattern.Step) error {
	var last pattern.Direction

	for _, s := range steps {
		var err error

		if s.Kick == nil {
			_, err = fmt.Fprintf(w, "Initial position: %s\n\n", s.Positions)
			if err != nil {
				return err
			}
			continue
		}

		if s.Direction != last {
			if last != "" {
				if _, err = fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if _, err = fmt.Fprintf(w, "Kicking %s\n", s.Direction); err != nil {
				return err
			}
			last = s.Direction
		}

		if _, err = fmt.Fprintf(w, "After %s. %s\n", s.Move(), s.Positions); err != nil {
			return err
		}
	}

	if last != "" {
		_, err := fmt.Fprintln(w)
		return err
	}

	return nil
}

type document struct {
	Side   string  `yaml:"side"`
	LRDist float64 `yaml:"lrdist"`
	FBDist float64 `yaml:"fbdist"`
	Steps  []step  `yaml:"steps"`
}

type step struct {
	Direction string     `yaml:"direction,omitempty"`
	Move      string     `yaml:"move"`
	Left      [2]float64 `yaml:"left,flow"`
	Right     [2]float64 `yaml:"right,flow"`
}

// WriteYAML writes the pattern and its steps as a YAML document. Coordinates
// are rounded to six decimal places, which hides float noise like -1e-17.
func WriteYAML(w io.Writer, p *pattern.Pattern) error {
	doc := document{
		Side:   p.Side.String(),
		LRDist: p.LR,
		FBDist: p.FB,
	}

	for _, s := range p.Steps() {
		doc.Steps = append(doc.Steps, step{
			Direction: string(s.Direction),
			Move:      s.Move(),
			Left:      round(s.Positions.Left()),
			Right:     round(s.Positions.Right()),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}

	return enc.Close()
}

func round(v math2d.Vector2) [2]float64 {
	return [2]float64{round6(v.X), round6(v.Y)}
}

func round6(f float64) float64 {
	r := math.Round(f*1e6) / 1e6
	if r == 0 {
		return 0 // no negative zero
	}

	return r
}
