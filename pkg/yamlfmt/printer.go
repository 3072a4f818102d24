// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"carvel.dev/yamlast/pkg/yamlast"
)

type Printer struct {
	writer *writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	// ExplicitDocumentStart writes "---" in front of the first document too.
	ExplicitDocumentStart bool
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{newWriter(writer), PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) *Printer {
	return &Printer{newWriter(writer), opts}
}

func (p *Printer) Print(val interface{}) {
	p.print(val, whitespace{}, p.writer)
}

func (p *Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, whitespace{}, newWriter(buf))
	return buf.String()
}

func (p *Printer) print(val interface{}, ws whitespace, writer *writer) {
	switch typedVal := val.(type) {
	case *yamlast.DocumentSet:
		for i, item := range typedVal.Items {
			for _, dir := range item.Directives {
				writer.AddContent(writerChunk{
					Indent:  ws.Indent,
					Content: strings.Join(append([]string{"%" + dir.Name}, dir.Params...), " "),
				})
			}
			// an empty first document is only kept with an explicit start
			emptyFirst := i == 0 && item.Root == nil && len(typedVal.Items) > 1
			if i != 0 || p.opts.ExplicitDocumentStart || len(item.Directives) > 0 || emptyFirst {
				writer.AddContent(writerChunk{Indent: ws.Indent, Content: "---"})
			}
			p.print(item, ws, writer)
		}

	case *yamlast.Document:
		if typedVal.Root == nil {
			return
		}
		leafVal := p.leafValue(typedVal.Root)
		if leafVal.IsLeaf {
			writer.AddContent(writerChunk{Indent: ws.Indent, Content: leafVal.String})
			return
		}
		if props := propsStr(typedVal.Root); props != "" {
			writer.AddContent(writerChunk{Indent: ws.Indent, Content: props})
		}
		p.print(typedVal.Root, ws, writer)

	case *yamlast.Map:
		for _, item := range typedVal.Mappings {
			p.print(item, ws, writer)
		}

	case *yamlast.Mapping:
		key := p.keyStr(typedVal.Key)
		leafVal := p.leafValue(typedVal.Value)
		switch {
		case !leafVal.IsLeaf:
			content := key + ":"
			if props := propsStr(typedVal.Value); props != "" {
				content += " " + props
			}
			writer.AddContent(writerChunk{Indent: ws.Indent, Content: content})
			p.print(typedVal.Value, ws.NewIndented(), writer)

		case leafVal.IsMultiline():
			writer.AddContent(writerChunk{
				Indent:         ws.Indent,
				Content:        key + ":",
				AllowsInlining: true,
				InliningSpacer: " ",
			})
			writer.AddContent(writerChunk{Indent: ws.NewIndented().Indent, Content: leafVal.String})

		default:
			val := ""
			if leafVal.String != "" {
				val = " " + leafVal.String
			}
			writer.AddContent(writerChunk{Indent: ws.Indent, Content: key + ":" + val})
		}

	case *yamlast.Sequence:
		for _, item := range typedVal.Items {
			leafVal := p.leafValue(item)
			switch {
			case !leafVal.IsLeaf:
				props := propsStr(item)
				content := "-"
				if props != "" {
					content += " " + props
				}
				writer.AddContent(writerChunk{
					Indent:         ws.Indent,
					Content:        content,
					AllowsInlining: props == "",
					InliningSpacer: " ",
				})
				p.print(item, ws.NewIndented(), writer)

			case leafVal.IsMultiline():
				writer.AddContent(writerChunk{
					Indent:         ws.Indent,
					Content:        "-",
					AllowsInlining: true,
					InliningSpacer: " ",
				})
				writer.AddContent(writerChunk{Indent: ws.NewIndented().Indent, Content: leafVal.String})

			default:
				val := ""
				if leafVal.String != "" {
					val = " " + leafVal.String
				}
				writer.AddContent(writerChunk{Indent: ws.Indent, Content: "-" + val})
			}
		}

	default:
		panic(fmt.Sprintf("Unexpected %T in Printer", val))
	}
}

type printerLeafValue struct {
	String string
	IsLeaf bool
	IsNil  bool
}

func (v printerLeafValue) IsMultiline() bool {
	return strings.Contains(v.String, "\n")
}

type scalarContext int

const (
	blockContext scalarContext = iota
	keyContext
	flowContext
)

// leafValue renders nodes that fit in a single chunk: scalars, references,
// flow collections and empty collections.
func (p *Printer) leafValue(val yamlast.Node) printerLeafValue {
	switch typedVal := val.(type) {
	case nil:
		return printerLeafValue{IsLeaf: true, IsNil: true}

	case *yamlast.Map:
		if !typedVal.Flow() && len(typedVal.Mappings) > 0 {
			return printerLeafValue{}
		}

	case *yamlast.Sequence:
		if !typedVal.Flow() && len(typedVal.Items) > 0 {
			return printerLeafValue{}
		}
	}
	return printerLeafValue{String: p.inlineStr(val, blockContext), IsLeaf: true}
}

func (p *Printer) inlineStr(val yamlast.Node, ctx scalarContext) string {
	var body string

	switch typedVal := val.(type) {
	case nil:
		return ""

	case *yamlast.Scalar:
		body = scalarStr(typedVal, ctx)

	case *yamlast.AnchorRef:
		return "*" + typedVal.Name

	case *yamlast.IncludeRef:
		body = scalarStr(yamlast.NewScalar(typedVal.Path), ctx)
		if typedVal.Tag() == "" {
			body = yamlast.DefaultIncludeTag + " " + body
		}

	case *yamlast.Map:
		var entries []string
		for _, item := range typedVal.Mappings {
			entry := p.keyStr(item.Key)
			if item.Value != nil {
				entry += ": " + p.inlineStr(item.Value, flowContext)
			}
			entries = append(entries, entry)
		}
		body = "{" + strings.Join(entries, ", ") + "}"

	case *yamlast.Sequence:
		var entries []string
		for _, item := range typedVal.Items {
			if item == nil {
				entries = append(entries, "null")
				continue
			}
			entries = append(entries, p.inlineStr(item, flowContext))
		}
		body = "[" + strings.Join(entries, ", ") + "]"

	case *yamlast.Mapping:
		panic(fmt.Sprintf("Unexpected %T in Printer", val))
	}

	props := propsStr(val)
	switch {
	case props == "":
		return body
	case body == "":
		return props
	default:
		return props + " " + body
	}
}

func (p *Printer) keyStr(key *yamlast.Scalar) string {
	if key == nil {
		return `""`
	}
	return p.inlineStr(key, keyContext)
}

func propsStr(n yamlast.Node) string {
	var parts []string
	if n.Anchor() != "" {
		parts = append(parts, "&"+n.Anchor())
	}
	if n.Tag() != "" {
		parts = append(parts, n.Tag())
	}
	return strings.Join(parts, " ")
}

// scalarStr keeps the source style of s where it can express the value in
// ctx and falls back to double quotes otherwise. Folded scalars are written
// as literal ones since their value is already folded.
func scalarStr(s *yamlast.Scalar, ctx scalarContext) string {
	val := s.Value

	switch s.Style {
	case yamlast.PlainStyle:
		if strings.ContainsAny(val, "\n\r") || (ctx == flowContext && strings.ContainsAny(val, ",[]{}")) {
			return strconv.Quote(val)
		}
		return val

	case yamlast.SingleQuotedStyle:
		if strings.ContainsAny(val, "\n\r") {
			return strconv.Quote(val)
		}
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"

	case yamlast.LiteralStyle, yamlast.FoldedStyle:
		if ctx == blockContext {
			if block, ok := literalStr(val); ok {
				return block
			}
		}
		return strconv.Quote(val)

	default:
		return strconv.Quote(val)
	}
}

// literalStr renders val as a literal block scalar whose lines are indented
// by one level relative to the chunk holding it.
func literalStr(val string) (string, bool) {
	content := strings.TrimRight(val, "\n")
	if content == "" || strings.Contains(val, "\r") {
		return "", false
	}

	header := "|"
	if firstLine := strings.TrimLeft(content, "\n"); strings.HasPrefix(firstLine, " ") {
		header += "2"
	}

	trailing := len(val) - len(content)
	lines := strings.Split(content, "\n")
	switch trailing {
	case 0:
		header += "-"
	case 1:
	default:
		header += "+"
		for i := 1; i < trailing; i++ {
			lines = append(lines, "")
		}
	}

	var out strings.Builder
	out.WriteString(header)
	for _, line := range lines {
		out.WriteString("\n")
		if line != "" {
			out.WriteString(indentLvl + line)
		}
	}
	return out.String(), true
}

const indentLvl = "  "

type whitespace struct {
	Indent string
}

func (w whitespace) NewIndented() whitespace {
	return whitespace{Indent: w.Indent + indentLvl}
}
