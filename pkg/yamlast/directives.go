// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"strings"

	"carvel.dev/yamlast/pkg/yamlast/internal/scanner"
	"github.com/hashicorp/go-version"
)

// SupportedYAMLVersion is the newest YAML version the parser understands.
var SupportedYAMLVersion = version.Must(version.NewVersion("1.2"))

func (p *docParser) parseDirectives() {
	var (
		seenYAML bool
		handles  = map[string]bool{}
	)

	for p.sc.Peek().Kind == scanner.Directive {
		tok := p.sc.Next()
		fields := strings.Fields(tok.Value)
		if len(fields) == 0 {
			p.report(tok.Start, "directive name must not be less than one character in length")
			continue
		}

		dir := &Directive{Name: fields[0], Params: fields[1:], Start: tok.Start, End: tok.End}
		p.directives = append(p.directives, dir)

		switch dir.Name {
		case "YAML":
			if seenYAML {
				p.report(tok.Start, "duplication of %YAML directive")
				continue
			}
			seenYAML = true
			p.checkYAMLVersion(dir)

		case "TAG":
			if len(dir.Params) != 2 {
				p.report(tok.Start, "TAG directive accepts exactly two arguments")
				continue
			}
			if handles[dir.Params[0]] {
				p.report(tok.Start, "there is a previously declared suffix for \""+dir.Params[0]+"\" tag handle")
			}
			handles[dir.Params[0]] = true

		default:
			p.warn(tok.Start, "unknown document directive \""+dir.Name+"\"")
		}
	}
}

func (p *docParser) checkYAMLVersion(dir *Directive) {
	if len(dir.Params) != 1 {
		p.report(dir.Start, "YAML directive accepts exactly one argument")
		return
	}
	ver, err := version.NewVersion(dir.Params[0])
	if err != nil || strings.Count(dir.Params[0], ".") != 1 {
		p.report(dir.Start, "ill-formed argument of the YAML directive")
		return
	}

	segments := ver.Segments()
	if segments[0] != SupportedYAMLVersion.Segments()[0] {
		p.report(dir.Start, "unacceptable YAML version of the document")
		return
	}
	if ver.GreaterThan(SupportedYAMLVersion) {
		p.warn(dir.Start, "unsupported YAML version of the document")
	}
}
