package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode/utf8"
)

// RenderOptions controls the generated file header.
type RenderOptions struct {
	// Args is the command line recorded in the "Code generated" header.
	Args string
}

// reserved lists identifiers the generated methods use internally and
// therefore cannot serve as the receiver name.
var reserved = map[string]struct{}{
	"i": {}, "v": {}, "x": {}, "text": {}, "entries": {},
	"arraymap": {}, "fmt": {}, "strconv": {},
}

type renderData struct {
	*Enum
	Args      string
	Receiver  string
	Names     string
	NameIndex []int
}

var funcs = template.FuncMap{
	// offset renders a constant so that "name-offset" is zero.
	"offset": func(v int64) string {
		if v < 0 {
			return fmt.Sprintf("(%d)", v)
		}

		return fmt.Sprint(v)
	},
	"comment": comment,
}

var fileTemplate = template.Must(template.New("arraymap").Funcs(funcs).Parse(`// Code generated by "arraymapgen{{if .Args}} {{.Args}}{{end}}"; DO NOT EDIT.

package {{.Package}}

import (
{{- if .Text}}
	"fmt"
	"strconv"
{{end}}
	"github.com/homier/arraymap"
)
{{if .Declare}}
{{if .Doc}}{{comment .Doc}}
{{end}}type {{.Name}} {{.Repr}}

const (
{{- range .Variants}}
	{{.Name}} {{$.Name}} = {{.Value}}
{{- end}}
)
{{end}}
func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the arraymapgen command to generate them again.
	var x [1]struct{}
{{- range .Variants}}
	_ = x[{{.Name}}-{{offset .Value}}]
{{- end}}
}

// {{.Name}}Count is the number of {{.Name}} variants.
const {{.Name}}Count = {{len .Variants}}

// {{.Name}}Map holds one V for every {{.Name}} variant.
type {{.Name}}Map[V any] = arraymap.Map[{{.Name}}, V, [{{.Name}}Count]V]
{{if .Dense}}
// Index returns the slot index of {{.Receiver}}.
func ({{.Receiver}} {{.Name}}) Index() int {
	return int({{.Receiver}})
}

// FromIndex returns the variant whose slot index is i.
func ({{.Name}}) FromIndex(i int) {{.Name}} {
	return {{.Name}}(i)
}
{{else}}
var _{{.Name}}_variants = [{{.Name}}Count]{{.Name}}{
{{- range .Variants}}
	{{.Name}},
{{- end}}
}

// Index returns the slot index of {{.Receiver}}, or -1 if {{.Receiver}} is not a declared variant.
func ({{.Receiver}} {{.Name}}) Index() int {
	switch {{.Receiver}} {
{{- range $i, $v := .Variants}}
	case {{$v.Name}}:
		return {{$i}}
{{- end}}
	}
	return -1
}

// FromIndex returns the variant whose slot index is i.
func ({{.Name}}) FromIndex(i int) {{.Name}} {
	return _{{.Name}}_variants[i]
}
{{end}}
// VariantCount returns {{.Name}}Count.
func ({{.Name}}) VariantCount() int {
	return {{.Name}}Count
}

// New{{.Name}}Map builds a {{.Name}}Map from exactly one entry per variant, in any order.
func New{{.Name}}Map[V any](entries ...arraymap.Entry[{{.Name}}, V]) ({{.Name}}Map[V], error) {
	return arraymap.New[{{.Name}}, V, [{{.Name}}Count]V](entries...)
}

// Must{{.Name}}Map is like New{{.Name}}Map but panics on error.
func Must{{.Name}}Map[V any](entries ...arraymap.Entry[{{.Name}}, V]) {{.Name}}Map[V] {
	return arraymap.MustNew[{{.Name}}, V, [{{.Name}}Count]V](entries...)
}
{{- if .Text}}

const _{{.Name}}_name = "{{.Names}}"

var _{{.Name}}_index = [...]uint16{ {{- range $i, $n := .NameIndex}}{{if $i}}, {{end}}{{$n}}{{end -}} }

// String returns the name of {{.Receiver}}.
func ({{.Receiver}} {{.Name}}) String() string {
	i := {{.Receiver}}.Index()
	if i < 0 || i >= {{.Name}}Count {
		return "{{.Name}}(" + strconv.Format{{if .Signed}}Int(int64{{else}}Uint(uint64{{end}}({{.Receiver}}), 10) + ")"
	}
	return _{{.Name}}_name[_{{.Name}}_index[i]:_{{.Name}}_index[i+1]]
}

// MarshalText implements encoding.TextMarshaler.
func ({{.Receiver}} {{.Name}}) MarshalText() ([]byte, error) {
	if !arraymap.Valid({{.Receiver}}) {
		return nil, fmt.Errorf("invalid {{.Name}} %d", {{.Receiver}})
	}
	return []byte({{.Receiver}}.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func ({{.Receiver}} *{{.Name}}) UnmarshalText(text []byte) error {
	for i := range {{.Name}}Count {
		if v := {{.Receiver}}.FromIndex(i); v.String() == string(text) {
			*{{.Receiver}} = v
			return nil
		}
	}
	return fmt.Errorf("invalid {{.Name}} %q", text)
}
{{- end}}
`))

// Render returns the gofmt-formatted source of the key contract for e.
// e must already be valid.
func Render(e *Enum, opts RenderOptions) ([]byte, error) {
	data := renderData{
		Enum:     e,
		Args:     opts.Args,
		Receiver: receiverName(e),
	}

	if e.Text {
		var names strings.Builder

		data.NameIndex = append(data.NameIndex, 0)
		for _, v := range e.Variants {
			names.WriteString(v.Name)
			data.NameIndex = append(data.NameIndex, names.Len())
		}
		data.Names = names.String()
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", e.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting %s: %w", e.Name, err)
	}

	return src, nil
}

// comment turns text into a line comment, one "//" per line.
func comment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if line = strings.TrimRight(line, " \t\r"); line == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + line
		}
	}

	return strings.Join(lines, "\n")
}

// receiverName picks a receiver for e's methods that shadows neither a
// variant nor a name the generated bodies use.
func receiverName(e *Enum) string {
	taken := func(name string) bool {
		if _, ok := reserved[name]; ok {
			return true
		}

		for _, v := range e.Variants {
			if v.Name == name {
				return true
			}
		}

		return false
	}

	_, size := utf8.DecodeRuneInString(e.Name)
	for _, name := range []string{strings.ToLower(e.Name[:size]), "k", "key", "variant"} {
		if !taken(name) {
			return name
		}
	}

	for i := 0; ; i++ {
		if name := fmt.Sprintf("k%d", i); !taken(name) {
			return name
		}
	}
}

// Filename returns the conventional output file name for e.
func Filename(e *Enum) string {
	return strings.ToLower(e.Name) + "_arraymap.go"
}
