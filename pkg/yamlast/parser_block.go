// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"fmt"
	"strings"

	"carvel.dev/yamlast/pkg/yamlast/internal/scanner"
)

var scalarStyles = map[scanner.Kind]ScalarStyle{
	scanner.Plain:        PlainStyle,
	scanner.SingleQuoted: SingleQuotedStyle,
	scanner.DoubleQuoted: DoubleQuotedStyle,
	scanner.Literal:      LiteralStyle,
	scanner.Folded:       FoldedStyle,
}

// properties are the anchor and tag written in front of a node.
type properties struct {
	present bool
	first   scanner.Token
	end     int
	anchor  string
	tag     string
}

func (p *docParser) parseBlockNode(parentIndent int, ctx nodeContext, parentLine int) Node {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.opts.MaxDepth {
		p.abort(p.sc.Peek().Start, "nesting too deep")
		return nil
	}
	return p.blockNode(parentIndent, ctx, parentLine)
}

// accepts reports whether tok can start a node nested under a collection
// at parentIndent. parentLine is the line of the indicator ("-" or ":")
// introducing the node, or -1.
func accepts(tok scanner.Token, parentIndent int, ctx nodeContext, parentLine int) bool {
	switch {
	case atEnd(tok):
		return false
	case tok.Line == parentLine, !tok.FirstOnLine, tok.Column > parentIndent:
		return true
	default:
		// "key:\n- item" is a sequence value at the key's own column
		return ctx == mappingValueContext && tok.Column == parentIndent && tok.Kind == scanner.SeqEntry
	}
}

func isKeyToken(tok scanner.Token) bool {
	return tok.IsKey && (tok.Kind.IsScalar() || tok.Kind == scanner.Alias)
}

func (p *docParser) blockNode(parentIndent int, ctx nodeContext, parentLine int) Node {
	tok := p.sc.Peek()
	if !accepts(tok, parentIndent, ctx, parentLine) {
		return nil
	}

	props := p.parseProperties()
	tok = p.sc.Peek()
	if props.present {
		sameLine := tok.Line == props.first.Line && !atEnd(tok)
		if !sameLine && !accepts(tok, parentIndent, ctx, -1) {
			return p.decorate(p.emptyScalar(props), props)
		}
		if sameLine && isKeyToken(tok) {
			// "&a key: value" anchors the key, not the map
			return p.parseBlockMap(props.first.Column, props)
		}
	}

	var n Node
	switch {
	case tok.Kind == scanner.Alias && !tok.IsKey:
		return p.parseAlias(props)
	case tok.Kind == scanner.SeqEntry:
		if tok.Line == parentLine && ctx == mappingValueContext {
			p.report(tok.Start, "sequence entries are not allowed here")
		}
		n = p.parseBlockSequence(tok.Column)
	case isKeyToken(tok):
		if tok.Line == parentLine && ctx == mappingValueContext {
			p.report(tok.Start, "mapping values are not allowed in this context")
		}
		n = p.parseBlockMap(tok.Column, properties{})
	case tok.Kind == scanner.ExplicitKey || tok.Kind == scanner.MappingValue:
		n = p.parseBlockMap(tok.Column, properties{})
	case tok.Kind.IsScalar():
		n = p.parseFlowScalar(parentIndent)
	case tok.Kind == scanner.Literal || tok.Kind == scanner.Folded:
		n = p.parseBlockScalar(parentIndent)
	case tok.Kind == scanner.FlowSeqStart || tok.Kind == scanner.FlowMapStart:
		n = p.parseFlowCollection()
	default:
		p.unexpected(tok, "at the start of a node")
		p.sc.Next()
		if props.present {
			return p.decorate(p.emptyScalar(props), props)
		}
		return nil
	}
	return p.decorate(n, props)
}

func (p *docParser) parseProperties() properties {
	var props properties
	for {
		tok := p.sc.Peek()
		if tok.Kind != scanner.Anchor && tok.Kind != scanner.Tag {
			return props
		}
		p.sc.Next()

		if !props.present {
			props.present = true
			props.first = tok
		}
		props.end = tok.End

		if tok.Kind == scanner.Anchor {
			if props.anchor != "" {
				p.report(tok.Start, "a node can not have more than one anchor")
			}
			props.anchor = tok.Value
		} else {
			if props.tag != "" {
				p.report(tok.Start, "a node can not have more than one tag")
			}
			props.tag = tok.Value
		}
	}
}

// decorate applies properties to a parsed node. A scalar tagged with the
// include tag becomes an IncludeRef.
func (p *docParser) decorate(n Node, props properties) Node {
	if n == nil || !props.present {
		return n
	}

	b := base(n)
	b.start = min(b.start, props.first.Start)
	b.anchor = props.anchor
	b.tag = props.tag

	if props.tag == p.opts.IncludeTag {
		n = p.includeRef(n)
	}
	if props.anchor != "" {
		p.anchors[props.anchor] = n
	}
	return n
}

func (p *docParser) decorateKey(key *Scalar, props properties) {
	if !props.present {
		return
	}
	key.start = min(key.start, props.first.Start)
	key.anchor = props.anchor
	key.tag = props.tag
	if props.anchor != "" {
		p.anchors[props.anchor] = key
	}
}

func (p *docParser) includeRef(n Node) Node {
	scalar, ok := n.(*Scalar)
	if !ok {
		p.reportOn(n, n.StartPosition(), fmt.Sprintf("%s expects a scalar path", p.opts.IncludeTag))
		return n
	}
	ref := &IncludeRef{node: scalar.node, Path: scalar.Value}
	if scalar.Value == "" {
		p.reportOn(ref, scalar.start, "include reference requires a path")
	}
	return ref
}

func (p *docParser) parseAlias(props properties) Node {
	tok := p.sc.Next()
	ref := &AnchorRef{
		node:  node{start: tok.Start, end: tok.End},
		Name:  tok.Value,
		Value: p.anchors[tok.Value],
	}
	if ref.Value == nil {
		p.reportOn(ref, tok.Start, fmt.Sprintf("unidentified alias %q", tok.Value))
	}
	if props.present {
		p.reportOn(ref, props.first.Start, "an alias node must not specify any properties")
	}
	return ref
}

func (p *docParser) newScalar(tok scanner.Token) *Scalar {
	return &Scalar{
		node:       node{start: tok.Start, end: tok.End},
		Value:      tok.Value,
		RawValue:   p.src[tok.Start:tok.End],
		Style:      scalarStyles[tok.Kind],
		NodeIndent: tok.LineIndent,
	}
}

// emptyScalar stands for a node that only has properties ("key: &a").
func (p *docParser) emptyScalar(props properties) *Scalar {
	return &Scalar{
		node:       node{start: props.first.Start, end: props.end},
		NodeIndent: props.first.LineIndent,
	}
}

// parseFlowScalar parses a quoted or plain scalar. Plain scalars continue on
// following lines indented deeper than parentIndent.
func (p *docParser) parseFlowScalar(parentIndent int) *Scalar {
	first := p.sc.Next()
	scalar := p.newScalar(first)
	if first.Kind != scanner.Plain {
		return scalar
	}

	var value strings.Builder
	value.WriteString(first.Value)
	for {
		tok := p.sc.Peek()
		if tok.Kind != scanner.Plain || !tok.FirstOnLine || tok.AfterComment || tok.IsKey || tok.Column <= parentIndent {
			break
		}
		p.sc.Next()

		if breaks := strings.Count(p.src[scalar.end:tok.Start], "\n"); breaks == 1 {
			value.WriteByte(' ')
		} else {
			value.WriteString(strings.Repeat("\n", breaks-1))
		}
		value.WriteString(tok.Value)
		scalar.end = tok.End
	}
	scalar.Value = value.String()
	scalar.RawValue = p.src[scalar.start:scalar.end]
	return scalar
}

func (p *docParser) parseBlockScalar(parentIndent int) *Scalar {
	header := p.sc.Next()
	value, end := p.sc.BlockScalar(header, parentIndent)

	scalar := p.newScalar(header)
	scalar.Value = value
	scalar.end = end
	scalar.RawValue = p.src[header.Start:end]
	return scalar
}

func (p *docParser) parseBlockMap(indent int, props properties) Node {
	m := &Map{}
	p.parseMapEntries(m, indent, props)
	if len(m.Mappings) == 0 {
		return nil
	}
	return m
}

// parseMapEntries appends the entries at indent to m. props belong to the
// first key when m is still empty.
func (p *docParser) parseMapEntries(m *Map, indent int, props properties) {
	empty := len(m.Mappings) == 0
	first := empty
	for {
		tok := p.sc.Peek()
		if atEnd(tok) {
			break
		}
		if !first {
			if !tok.FirstOnLine {
				p.report(tok.Start, "unexpected content after a mapping value")
				p.skipLine()
				continue
			}
			if tok.Column < indent {
				break
			}
			if tok.Column > indent {
				p.report(tok.Start, "bad indentation of a mapping entry")
				p.skipBlock(indent)
				continue
			}
			if tok.Kind == scanner.SeqEntry {
				p.report(tok.Start, "unexpected sequence entry in a mapping")
				p.skipBlock(indent)
				continue
			}
			props = p.parseProperties()
			tok = p.sc.Peek()
		}
		first = false

		mapping := p.parseBlockMapping(indent, props, tok)
		if mapping != nil {
			setParent(mapping, m)
			m.Mappings = append(m.Mappings, mapping)
		}
	}

	if len(m.Mappings) == 0 {
		return
	}
	if empty {
		m.start = m.Mappings[0].start
	}
	m.end = m.Mappings[len(m.Mappings)-1].end
}

func (p *docParser) parseBlockMapping(indent int, props properties, tok scanner.Token) *Mapping {
	var b mappingBuilder
	keyOnPropsLine := !props.present || tok.Line == props.first.Line

	switch {
	case keyOnPropsLine && (tok.Kind.IsScalar() || tok.Kind == scanner.Alias):
		p.sc.Next()
		key := p.newScalar(tok)
		if tok.Kind == scanner.Alias {
			key.Value = key.RawValue
			p.reportOn(key, tok.Start, "aliases are not supported as mapping keys")
		}
		p.decorateKey(key, props)

		if !tok.IsKey {
			mapping := mappingBuilder{key: key}.build(nil)
			p.reportOn(mapping, tok.Start, "can not read a block mapping entry; a multiline key may not be an implicit key")
			return mapping
		}
		b.key = key

	case tok.Kind == scanner.MappingValue:
		b.key = &Scalar{node: node{start: tok.Start, end: tok.Start}, NodeIndent: tok.LineIndent}
		p.report(tok.Start, "incomplete mapping pair; a key node is missed")

	case tok.Kind == scanner.ExplicitKey:
		p.report(tok.Start, "explicit mapping keys are not supported")
		p.skipBlock(indent)
		return nil

	default:
		p.unexpected(tok, "in a block mapping")
		p.skipBlock(indent)
		return nil
	}

	colon := p.sc.Next()
	b.colonEnd = colon.End
	return b.build(p.parseBlockNode(indent, mappingValueContext, colon.Line))
}

func (p *docParser) parseBlockSequence(indent int) *Sequence {
	seq := &Sequence{node: node{start: p.sc.Peek().Start}}
	p.parseSequenceEntries(seq, indent)
	return seq
}

// parseSequenceEntries appends the entries at indent to seq.
func (p *docParser) parseSequenceEntries(seq *Sequence, indent int) {
	first := len(seq.Items) == 0
	for {
		tok := p.sc.Peek()
		if atEnd(tok) {
			break
		}
		if !first && !tok.FirstOnLine {
			p.report(tok.Start, "unexpected content after a sequence entry")
			p.skipLine()
			continue
		}
		first = false

		if tok.Column < indent {
			break
		}
		if tok.Column > indent {
			p.report(tok.Start, "bad indentation of a sequence entry")
			p.skipBlock(indent)
			continue
		}
		if tok.Kind != scanner.SeqEntry {
			break
		}

		p.sc.Next()
		seq.entryStarts = append(seq.entryStarts, tok.Start)
		item := p.parseBlockNode(indent, sequenceItemContext, tok.Line)
		seq.Items = append(seq.Items, item)
		if item != nil {
			setParent(item, seq)
			seq.end = item.EndPosition()
		} else {
			seq.end = tok.End
		}
	}
}
