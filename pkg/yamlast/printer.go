// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"bytes"
	"fmt"
	"io"
)

// Printer writes a debug rendering of a tree: one line per node with its
// kind, content and range.
type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	ExcludeRefs      bool
	ExcludePositions bool
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer, PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) Printer {
	return Printer{writer, opts}
}

func (p Printer) Print(val interface{}) {
	fmt.Fprintf(p.writer, "%s", p.PrintStr(val))
}

func (p Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, "", buf)
	return buf.String()
}

func (p Printer) print(val interface{}, indent string, writer io.Writer) {
	const indentLvl = "  "

	switch typedVal := val.(type) {
	case *DocumentSet:
		fmt.Fprintf(writer, "%sdocset%s\n", indent, p.rangeStr(0, len(typedVal.Source)))
		for _, item := range typedVal.Items {
			p.print(item, indent+indentLvl, writer)
		}

	case *Document:
		fmt.Fprintf(writer, "%sdoc%s%s\n", indent, p.rangeStr(typedVal.start, typedVal.end), p.errorsStr(typedVal.Errors))
		p.print(typedVal.Root, indent+indentLvl, writer)

	case *Map:
		style := ""
		if typedVal.flow {
			style = " flow"
		}
		fmt.Fprintf(writer, "%smap%s%s%s\n", indent, style, p.suffix(typedVal), p.ptrStr(typedVal))
		for _, item := range typedVal.Mappings {
			p.print(item, indent+indentLvl, writer)
		}

	case *Mapping:
		fmt.Fprintf(writer, "%smapping%s%s\n", indent, p.suffix(typedVal), p.ptrStr(typedVal))
		if typedVal.Key != nil {
			fmt.Fprintf(writer, "%skey %q%s\n", indent+indentLvl, typedVal.Key.Value, p.suffix(typedVal.Key))
		}
		p.print(typedVal.Value, indent+indentLvl, writer)

	case *Sequence:
		style := ""
		if typedVal.flow {
			style = " flow"
		}
		fmt.Fprintf(writer, "%sseq%s%s%s\n", indent, style, p.suffix(typedVal), p.ptrStr(typedVal))
		for _, item := range typedVal.Items {
			p.print(item, indent+indentLvl, writer)
		}

	case *Scalar:
		style := ""
		if typedVal.Style != PlainStyle {
			style = "(" + typedVal.Style.String() + ")"
		}
		fmt.Fprintf(writer, "%sscalar%s %q%s%s\n", indent, style, typedVal.Value, p.suffix(typedVal), p.ptrStr(typedVal))

	case *AnchorRef:
		fmt.Fprintf(writer, "%salias *%s%s%s\n", indent, typedVal.Name, p.suffix(typedVal), p.ptrStr(typedVal))

	case *IncludeRef:
		fmt.Fprintf(writer, "%sinclude %q%s%s\n", indent, typedVal.Path, p.suffix(typedVal), p.ptrStr(typedVal))

	case nil:
		fmt.Fprintf(writer, "%snull\n", indent)

	default:
		fmt.Fprintf(writer, "%s%v\n", indent, typedVal)
	}
}

func (p Printer) suffix(n Node) string {
	var out string
	if n.Anchor() != "" {
		out += " &" + n.Anchor()
	}
	if n.Tag() != "" {
		out += " " + n.Tag()
	}
	return out + p.rangeStr(n.StartPosition(), n.EndPosition()) + p.errorsStr(n.Errors())
}

func (p Printer) rangeStr(start, end int) string {
	if p.opts.ExcludePositions {
		return ""
	}
	return fmt.Sprintf(" %d..%d", start, end)
}

func (p Printer) errorsStr(errs []*ParseError) string {
	if len(errs) == 0 {
		return ""
	}
	return fmt.Sprintf(" errors=%d", len(errs))
}

func (p Printer) ptrStr(node Node) string {
	if !p.opts.ExcludeRefs {
		return fmt.Sprintf(" (obj=%p)", node)
	}
	return ""
}
