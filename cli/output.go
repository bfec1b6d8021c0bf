package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/amp-labs/amp-numeric/limits"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Result is the outcome of one command applied to one input value. Fields
// that do not apply to the command are left empty.
type Result struct {
	Input  string `json:"input"            yaml:"input"`
	Value  string `json:"value"            yaml:"value"`
	Hex    string `json:"hex,omitempty"    yaml:"hex,omitempty"`
	Class  string `json:"class,omitempty"  yaml:"class,omitempty"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func (r Result) columns() []string {
	cols := []string{r.Input, r.Value}

	for _, col := range []string{r.Hex, r.Class, r.Digest} {
		if col != "" {
			cols = append(cols, col)
		}
	}

	return cols
}

// LimitsReport holds every static fact about one type.
type LimitsReport struct {
	Type          string `json:"type" yaml:"type"`
	limits.Traits `yaml:",inline"`

	Min              string `json:"min"                        yaml:"min"`
	Max              string `json:"max"                        yaml:"max"`
	Infinity         string `json:"infinity,omitempty"         yaml:"infinity,omitempty"`
	NegativeInfinity string `json:"negativeInfinity,omitempty" yaml:"negativeInfinity,omitempty"`
	NaN              string `json:"nan,omitempty"              yaml:"nan,omitempty"`
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func writeResults(w io.Writer, format string, results []Result) error {
	if format == OutputYAML {
		if results == nil {
			results = []Result{}
		}

		return writeYAML(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	for _, result := range results {
		if _, err := fmt.Fprintln(tw, strings.Join(result.columns(), "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeLimits(w io.Writer, format string, report LimitsReport) error {
	if format == OutputYAML {
		return writeYAML(w, report)
	}

	rows := [][2]string{
		{"type", report.Type},
		{"kind", report.Kind.String()},
		{"bits", fmt.Sprint(report.Bits)},
		{"bytes", fmt.Sprint(report.Bytes)},
		{"signed", fmt.Sprint(report.Signed)},
		{"integer", fmt.Sprint(report.Integer)},
		{"min", report.Min},
		{"max", report.Max},
		{"has infinity", fmt.Sprint(report.HasInfinity)},
		{"has nan", fmt.Sprint(report.HasNaN)},
	}

	if report.HasInfinity {
		rows = append(rows, [2]string{"infinity", report.Infinity}, [2]string{"-infinity", report.NegativeInfinity})
	}

	if report.HasNaN {
		rows = append(rows, [2]string{"nan", report.NaN})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
