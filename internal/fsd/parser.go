package fsd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/logger"
	"fsdc/internal/remarks"
	"fsdc/internal/source"
	"fsdc/internal/trace"
)

// Result is the outcome of TryParseDefinition.
type Result struct {
	// Service is nil only when the grammar failed. It is set when validation
	// found problems, so callers can still inspect the tree.
	Service *definition.ServiceInfo
	// Errors in discovery order: remarks extraction, syntax, validation.
	Errors []*diag.DefinitionError
}

// Success reports whether the definition is free of errors.
func (r Result) Success() bool {
	return len(r.Errors) == 0
}

// Err returns the first error, or nil.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Option configures a Parser.
type Option func(*Parser)

// WithEngine replaces the grammar engine.
func WithEngine(e Engine) Option {
	return func(p *Parser) { p.engine = e }
}

// WithTracer records extract, grammar and validate spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Parser) { p.tracer = t }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// Parser reads definitions. It keeps no state between calls and is safe for
// concurrent use when its engine is.
type Parser struct {
	engine Engine
	tracer trace.Tracer
	log    *log.Logger
}

// NewParser creates a parser with the built-in engine.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		engine: DefaultEngine(),
		tracer: trace.Nop,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Component("fsd")
	}
	return p
}

// TryParseDefinition parses src and returns the service with every error found.
// It does not panic on malformed input.
func (p *Parser) TryParseDefinition(src source.NamedText) Result {
	return p.TryParseDefinitionContext(context.Background(), src)
}

// TryParseDefinitionContext is TryParseDefinition with spans parented to the
// span found in ctx.
func (p *Parser) TryParseDefinitionContext(ctx context.Context, src source.NamedText) Result {
	parent := trace.CurrentSpan(ctx).SpanID
	bag := diag.NewBag(0)

	span := trace.Begin(p.tracer, trace.ScopePass, "extract", parent)
	extracted := remarks.Extract(src)
	bag.Extend(extracted.Errors)
	span.WithExtra("sections", strconv.Itoa(extracted.Sections.Len())).End("")

	span = trace.Begin(p.tracer, trace.ScopePass, "grammar", parent)
	svc, err := p.engine.Parse(extracted.Body, extracted.Sections)
	if err != nil {
		span.End("failed")
		bag.Add(engineError(err))
		p.log.Debug("grammar failed", "file", src.Name, "error", err)
		return Result{Errors: bag.Items()}
	}
	span.End("")

	span = trace.Begin(p.tracer, trace.ScopePass, "validate", parent)
	bag.Extend(Validate(svc, extracted.Sections))
	span.WithExtra("errors", strconv.Itoa(bag.Len())).End("")

	p.log.Debug("parsed", "file", src.Name, "service", svc.Name(), "members", len(svc.Members()), "errors", bag.Len())
	return Result{Service: svc, Errors: bag.Items()}
}

// ParseDefinition parses src and fails with the first error found.
// The error is a *diag.DefinitionError.
func (p *Parser) ParseDefinition(src source.NamedText) (*definition.ServiceInfo, error) {
	res := p.TryParseDefinition(src)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Service, nil
}

// engineError converts an engine failure into one diagnostic.
func engineError(err error) *diag.DefinitionError {
	var failure *diag.SyntaxFailure
	if errors.As(err, &failure) {
		return Synthesize(failure)
	}
	var defErr *diag.DefinitionError
	if errors.As(err, &defErr) {
		return defErr
	}
	return diag.New(diag.SynInvalidDefinition, source.Position{}, fmt.Sprintf("invalid definition: %v", err)).WithCause(err)
}

var defaultParser = NewParser()

// TryParseDefinition parses src with the default parser.
func TryParseDefinition(src source.NamedText) Result {
	return defaultParser.TryParseDefinition(src)
}

// ParseDefinition parses src with the default parser.
func ParseDefinition(src source.NamedText) (*definition.ServiceInfo, error) {
	return defaultParser.ParseDefinition(src)
}
