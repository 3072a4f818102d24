// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import "carvel.dev/yamlast/pkg/yamlast/internal/scanner"

func (p *docParser) parseFlowCollection() Node {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.opts.MaxDepth {
		p.abort(p.sc.Peek().Start, "nesting too deep")
		return nil
	}

	open := p.sc.Next()
	isMap := open.Kind == scanner.FlowMapStart
	closer := scanner.FlowSeqEnd
	if isMap {
		closer = scanner.FlowMapEnd
	}

	var coll Node
	m := &Map{node: node{start: open.Start, end: open.End}, flow: true}
	seq := &Sequence{node: node{start: open.Start, end: open.End}, flow: true}
	if isMap {
		coll = m
	} else {
		coll = seq
	}
	b := base(coll)

	needSeparator := false
	for {
		tok := p.sc.Peek()
		switch tok.Kind {
		case scanner.EOF:
			p.reportOn(coll, tok.Start, "unexpected end of the stream within a flow collection")
			return coll
		case closer:
			p.sc.Next()
			b.end = tok.End
			return coll
		case scanner.FlowSeqEnd, scanner.FlowMapEnd:
			p.reportOn(coll, tok.Start, "unexpected end of flow collection")
			p.sc.Next()
			b.end = tok.End
			return coll
		case scanner.FlowEntry:
			if !needSeparator {
				p.reportOn(coll, tok.Start, "expected the node content, but found ','")
			}
			p.sc.Next()
			b.end = tok.End
			needSeparator = false
			continue
		}

		if needSeparator {
			p.reportOn(coll, tok.Start, "missed comma between flow collection entries")
		}
		needSeparator = true

		entry := p.parseFlowEntry(isMap)
		if entry == nil {
			continue
		}
		setParent(entry, coll)
		b.end = entry.EndPosition()
		if isMap {
			m.Mappings = append(m.Mappings, entry.(*Mapping))
		} else {
			seq.Items = append(seq.Items, entry)
			seq.entryStarts = append(seq.entryStarts, entry.StartPosition())
		}
	}
}

// parseFlowEntry parses "key: value", "key" or a single value. In a flow
// sequence a pair becomes a single pair Map. In a flow map the result is
// always a *Mapping.
func (p *docParser) parseFlowEntry(isMap bool) Node {
	props := p.parseProperties()
	tok := p.sc.Peek()

	if tok.Kind.IsScalar() && (tok.IsKey || isMap) {
		key := p.parseFlowScalar(-1)
		p.decorateKey(key, props)

		b := mappingBuilder{key: key}
		var value Node
		if p.sc.Peek().Kind == scanner.MappingValue {
			colon := p.sc.Next()
			b.colonEnd = colon.End
			switch p.sc.Peek().Kind {
			case scanner.FlowEntry, scanner.FlowSeqEnd, scanner.FlowMapEnd, scanner.EOF:
			default:
				value = p.parseFlowNode(p.parseProperties())
			}
		}
		mapping := b.build(value)
		if isMap {
			return mapping
		}
		pair := &Map{node: node{start: mapping.start, end: mapping.end}, Mappings: []*Mapping{mapping}, flow: true}
		setParent(mapping, pair)
		return pair
	}

	if tok.Kind == scanner.MappingValue && !props.present {
		p.report(tok.Start, "incomplete mapping pair; a key node is missed")
		p.sc.Next()
		return nil
	}

	value := p.parseFlowNode(props)
	if value == nil {
		p.unexpected(tok, "in a flow collection")
		p.sc.Next()
		return nil
	}
	if isMap {
		p.report(value.StartPosition(), "flow mapping keys must be scalars")
		return nil
	}
	return value
}

func (p *docParser) parseFlowNode(props properties) Node {
	tok := p.sc.Peek()

	var n Node
	switch {
	case tok.Kind == scanner.FlowSeqStart || tok.Kind == scanner.FlowMapStart:
		n = p.parseFlowCollection()
	case tok.Kind.IsScalar():
		n = p.parseFlowScalar(-1)
	case tok.Kind == scanner.Alias:
		return p.parseAlias(props)
	case props.present:
		n = p.emptyScalar(props)
	default:
		return nil
	}
	return p.decorate(n, props)
}
