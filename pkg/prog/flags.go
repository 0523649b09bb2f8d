package prog

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FlagSet wraps a [flag.FlagSet]. It is passed to Program.RegisterFlags, and
// provides flags shared by several programs, registered on first use.
type FlagSet struct {
	*flag.FlagSet
	output *Output
}

// Output returns the structured output flags -json and -yaml, registering them
// if needed.
func (fs *FlagSet) Output() *Output {
	if fs.output == nil {
		var o Output
		fs.BoolVar(&o.JSON, "json", false,
			"show output in JSON")
		fs.BoolVar(&o.YAML, "yaml", false,
			"show output in YAML")
		fs.output = &o
	}
	return fs.output
}

// Output keeps the values of the -json and -yaml flags.
type Output struct {
	JSON, YAML bool
}

// Write writes v to w. If -json or -yaml is set, v is serialized in that
// format; otherwise text is called to produce the output.
func (o *Output) Write(w io.Writer, v any, text func(w io.Writer) error) error {
	switch {
	case o.JSON && o.YAML:
		return BadUsage("-json and -yaml are mutually exclusive")
	case o.JSON:
		bs, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", bs)
		return err
	case o.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
