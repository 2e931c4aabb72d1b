package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"swstats/internal/analysis"
)

// decimals is the precision used for numeric cells in every format.
const decimals = 2

var headerCaser = cases.Title(language.English)

// Header turns a column name such as "starship_count" into "Starship Count".
func Header(name string) string {
	return headerCaser.String(strings.ReplaceAll(name, "_", " "))
}

// Dataset writes every row of frame in the requested format.
func Dataset(w io.Writer, frame analysis.Frame, format Format) error {
	switch format {
	case FormatTable, "":
		_, err := io.WriteString(w, renderTable(frame)+"\n")
		return err
	case FormatCSV:
		_, err := io.WriteString(w, newWriter(frame, false).RenderCSV()+"\n")
		return err
	case FormatJSON:
		return writeJSON(w, frame)
	case FormatYAML:
		return writeYAML(w, frame)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderTable(frame analysis.Frame) string {
	tw := newWriter(frame, true)
	tw.SetStyle(roundedStyle())

	columns := frame.Columns()
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, col := range columns {
		align := text.AlignLeft
		if col.Kind == analysis.KindNumber {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// roundedStyle keeps headers as given; Header already title-cases them.
func roundedStyle() table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	return style
}

func newWriter(frame analysis.Frame, prettyHeaders bool) table.Writer {
	columns := frame.Columns()
	tw := table.NewWriter()

	header := make(table.Row, len(columns))
	for i, col := range columns {
		if prettyHeaders {
			header[i] = Header(col.Name)
		} else {
			header[i] = col.Name
		}
	}
	tw.AppendHeader(header)

	for row := 0; row < frame.Len(); row++ {
		r := make(table.Row, len(columns))
		for i, col := range columns {
			r[i] = cell(frame, row, col)
		}
		tw.AppendRow(r)
	}
	return tw
}

func cell(frame analysis.Frame, row int, col analysis.Column) string {
	if col.Kind == analysis.KindNumber {
		return frame.Number(row, col.Name).Round(decimals).String()
	}
	return frame.Text(row, col.Name)
}

// record is one row with its keys kept in column order.
type record struct {
	frame analysis.Frame
	row   int
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.frame.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.value(col))
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, col := range r.frame.Columns() {
		var value yaml.Node
		if err := value.Encode(r.value(col)); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col.Name},
			&value,
		)
	}
	return node, nil
}

func (r record) value(col analysis.Column) any {
	if col.Kind == analysis.KindNumber {
		return r.frame.Number(r.row, col.Name).Round(decimals)
	}
	return r.frame.Text(r.row, col.Name)
}

func records(frame analysis.Frame) []record {
	out := make([]record, 0, frame.Len())
	for i := 0; i < frame.Len(); i++ {
		out = append(out, record{frame: frame, row: i})
	}
	return out
}

func writeJSON(w io.Writer, frame analysis.Frame) error {
	return encodeJSON(w, records(frame))
}

func writeYAML(w io.Writer, frame analysis.Frame) error {
	return encodeYAML(w, records(frame))
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
