package extract

import (
	"log/slog"

	"github.com/docstack-labs/idverify/constants"
)

// Pipeline turns one document's fragment list into a field->value Result.
// It holds no cross-invocation state: independent pipelines (or the same one)
// may process documents concurrently.
type Pipeline struct {
	catalog   *Catalog
	matcher   *Matcher
	validator *Validator
	guesser   *NameGuesser
	logger    *slog.Logger
}

func NewPipeline(catalog *Catalog, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	validator := NewValidator(catalog)
	return &Pipeline{
		catalog:   catalog,
		matcher:   NewMatcher(validator),
		validator: validator,
		guesser:   NewNameGuesser(catalog),
		logger:    logger,
	}
}

// Extract runs one label-resolution pass per catalog field, then the fallback
// passes for identifier, phone, email, and name. A field nothing matched stays
// unset; only an empty fragment list is an error. Fragments are deliberately
// not reserved once matched: the fallback passes re-scan the full list, and a
// fragment may serve more than one field.
func (p *Pipeline) Extract(frags []TextFragment, imageHeight int) (Result, error) {
	if len(frags) == 0 {
		return nil, ErrNoFragments
	}

	result := Result{}
	for _, spec := range p.catalog.Specs() {
		if val, ok := p.matcher.Resolve(spec, frags); ok {
			result[spec.Name] = val
			p.logger.Debug("field resolved via label", "field", spec.Name, "value", val)
		}
	}

	p.fallbackIdentifier(frags, result)
	p.fallbackTyped(frags, result, constants.FieldPhone)
	p.fallbackTyped(frags, result, constants.FieldEmail)
	p.fallbackName(frags, result, imageHeight)

	p.logger.Info("extraction complete", "resolved", len(result), "fields", len(p.catalog.Specs()))
	return result, nil
}

// fallbackIdentifier scans every fragment through the identifier validator,
// skipping anything that normalizes to the already-resolved phone number
// (a phone is identifier-shaped too).
func (p *Pipeline) fallbackIdentifier(frags []TextFragment, result Result) {
	if result.IsSet(constants.FieldIDNumber) {
		return
	}
	spec, ok := p.catalog.Spec(constants.FieldIDNumber)
	if !ok {
		return
	}
	phone, _ := result.Value(constants.FieldPhone)
	for _, frag := range frags {
		val, ok := p.validator.Validate(frag.Text, spec)
		if !ok || (phone != "" && val == phone) {
			continue
		}
		result[constants.FieldIDNumber] = val
		p.logger.Debug("field resolved via fallback scan", "field", constants.FieldIDNumber, "value", val)
		return
	}
}

// fallbackTyped accepts the first fragment whose whole text validates for the
// field's type, ignoring labels entirely. Used for phone and email, whose
// shapes are distinctive enough to stand alone.
func (p *Pipeline) fallbackTyped(frags []TextFragment, result Result, field constants.Field) {
	if result.IsSet(field) {
		return
	}
	spec, ok := p.catalog.Spec(field)
	if !ok {
		return
	}
	for _, frag := range frags {
		if val, ok := p.validator.Validate(frag.Text, spec); ok {
			result[field] = val
			p.logger.Debug("field resolved via fallback scan", "field", field, "value", val)
			return
		}
	}
}

func (p *Pipeline) fallbackName(frags []TextFragment, result Result, imageHeight int) {
	if result.IsSet(constants.FieldFullName) {
		return
	}
	if name, ok := p.guesser.Guess(frags, result, imageHeight); ok {
		result[constants.FieldFullName] = name
		p.logger.Debug("name resolved via orphan heuristic", "value", name)
	}
}
