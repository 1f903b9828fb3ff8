package format

import (
	"strings"

	"fsdc/internal/definition"
	"fsdc/internal/ident"
	"fsdc/internal/lexer"
)

// Generate renders svc as FSD text: the header, the body, then one remarks
// section per element that has remarks. Parsing the result gives back an
// equal model.
func Generate(svc *definition.ServiceInfo, opt Options) []byte {
	w := NewWriter(opt)
	g := generator{w: w}
	if opt.GeneratorName != "" {
		w.Line("// DO NOT EDIT: generated by " + opt.GeneratorName)
		w.BlankLine()
	}
	g.service(svc)
	g.remarks(svc)
	return w.Bytes()
}

type generator struct {
	w *Writer
}

func (g *generator) service(svc *definition.ServiceInfo) {
	g.leading(svc.Summary(), svc.Attributes())
	g.w.Line("service " + svc.Name())
	g.w.Line("{")
	g.w.IndentPush()
	for i, member := range svc.Members() {
		if i > 0 {
			g.w.BlankLine()
		}
		g.member(member)
	}
	g.w.IndentPop()
	g.w.Line("}")
}

func (g *generator) member(member definition.ServiceMemberInfo) {
	g.leading(member.Summary(), member.Attributes())
	g.w.Line(member.Kind().Keyword() + " " + member.Name())
	switch m := member.(type) {
	case *definition.ServiceMethodInfo:
		g.fields(m.RequestFields(), ":")
		g.fields(m.ResponseFields(), "")
	case *definition.ServiceDtoInfo:
		g.fields(m.Fields(), "")
	case *definition.ServiceEnumInfo:
		g.block(func() {
			for _, v := range m.Values() {
				g.leading(v.Summary(), v.Attributes())
				g.w.Line(v.Name() + ",")
			}
		}, "")
	case *definition.ServiceErrorSetInfo:
		g.block(func() {
			for _, e := range m.Errors() {
				g.leading(e.Summary(), e.Attributes())
				g.w.Line(e.Name() + ",")
			}
		}, "")
	}
}

func (g *generator) fields(fields []*definition.ServiceFieldInfo, suffix string) {
	g.block(func() {
		for _, f := range fields {
			g.leading(f.Summary(), f.Attributes())
			g.w.Line(f.Name() + ": " + f.TypeName() + ";")
		}
	}, suffix)
}

func (g *generator) block(body func(), suffix string) {
	g.w.Line("{")
	g.w.IndentPush()
	body()
	g.w.IndentPop()
	g.w.Line("}" + suffix)
}

// leading writes the summary and attribute lines that precede an element.
func (g *generator) leading(summary string, attrs []*definition.ServiceAttributeInfo) {
	if summary != "" {
		g.w.Line("/// " + summary)
	}
	for _, attr := range attrs {
		g.w.Line("[" + attribute(attr) + "]")
	}
}

func attribute(attr *definition.ServiceAttributeInfo) string {
	params := attr.Parameters()
	if len(params) == 0 {
		return attr.Name()
	}
	var b strings.Builder
	b.WriteString(attr.Name())
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name())
		b.WriteString(": ")
		b.WriteString(parameterValue(p.Value()))
	}
	b.WriteByte(')')
	return b.String()
}

// parameterValue leaves identifiers bare and quotes everything else.
func parameterValue(v string) string {
	if ident.IsValid(v) {
		return v
	}
	return lexer.Quote(v)
}

func (g *generator) remarks(svc *definition.ServiceInfo) {
	g.section(svc.Name(), svc.Remarks())
	for _, member := range svc.Members() {
		g.section(member.Name(), member.Remarks())
	}
}

func (g *generator) section(name string, lines []string) {
	if len(lines) == 0 {
		return
	}
	g.w.BlankLine()
	g.w.RawLine("# " + name)
	g.w.BlankLine()
	for _, line := range lines {
		g.w.RawLine(line)
	}
}
