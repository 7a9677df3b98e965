package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

// outputOptions are the shared rendering flags every listing command takes.
type outputOptions struct {
	Format string
	Query  string
}

func addOutputFlags(fs *flag.FlagSet, opts *outputOptions) {
	fs.StringVar(&opts.Format, "output", "table", "Output format: table or json")
	fs.StringVar(&opts.Query, "query", "", "JMESPath projection applied to the JSON result")
}

func (o outputOptions) validate() error {
	if o.Format != "table" && o.Format != "json" {
		return apperrors.Validation(fmt.Sprintf("unknown output format %q", o.Format))
	}
	return nil
}

// tableFn writes the tabular rendering of a result to the tab writer.
type tableFn func(tw *tabwriter.Writer) error

// renderResult writes value in the selected format. A --query projection
// forces JSON output: the projected shape no longer matches the table
// columns.
func renderResult(w io.Writer, opts outputOptions, value any, table tableFn) error {
	if err := opts.validate(); err != nil {
		return err
	}

	if opts.Query != "" {
		projected, err := projectQuery(opts.Query, value)
		if err != nil {
			return err
		}
		return writeJSON(w, projected)
	}

	if opts.Format == "json" {
		return writeJSON(w, value)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := table(tw); err != nil {
		return err
	}
	return tw.Flush()
}

// projectQuery round-trips value through JSON so the expression sees the
// wire shape (camelCase keys), then evaluates the JMESPath expression.
func projectQuery(query string, value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode result")
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode result")
	}

	projected, err := jmespath.Search(query, generic)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid --query expression: %v", err))
	}
	return projected, nil
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
