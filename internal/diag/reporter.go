package diag

import "fsdc/internal/source"

// Reporter принимает диагностики от фаз.
type Reporter interface {
	Report(code Code, pos source.Position, msg string, cause error)
}

// BagReporter пишет диагностики в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, pos source.Position, msg string, cause error) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(&DefinitionError{
		Code:     code,
		Message:  msg,
		Position: pos,
		Cause:    cause,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, source.Position, string, error) {}
