package formkit

import (
	"errors"
	"log/slog"

	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/i18n"
	"github.com/kohguanzeh/formkit/pkg/logger"
	"github.com/kohguanzeh/formkit/pkg/styles"
)

// Validator owns the validation setup for one form: the bound document, the
// registered fields and required groups, a default style seeding every entry
// and an optional submit callback. Registration methods return the Validator
// so calls chain; evaluation methods report a boolean outcome plus an
// operational error.
//
// A Validator is driven by a single caller at a time, matching the
// serialized event model of UI runtimes; it performs no locking.
type Validator struct {
	doc          dom.Document
	formSelector string
	form         dom.Element

	defaultStyle styles.Options
	fields       map[string]*fieldEntry
	fieldOrder   []string
	groups       map[string]*groupEntry
	groupOrder   []string

	onSubmit   func()
	translator *i18n.Translator
	lang       string
	log        *slog.Logger
}

// Option configures a Validator during construction.
type Option func(*Validator)

// WithStyle overlays style overrides onto the validator's default style,
// which seeds every later AddField and AddRequiredGroup entry.
func WithStyle(ovs ...styles.Override) Option {
	return func(v *Validator) {
		v.defaultStyle = styles.Merge(v.defaultStyle, ovs...)
	}
}

// WithBaseStyle replaces the validator's default style wholesale.
func WithBaseStyle(base styles.Options) Option {
	return func(v *Validator) {
		v.defaultStyle = base
	}
}

// WithStyleFromEnv loads the default style from the FORMKIT_* environment
// variables on top of the standard defaults. Panics when the environment
// cannot be parsed, to fail fast at construction.
func WithStyleFromEnv() Option {
	return func(v *Validator) {
		v.defaultStyle = styles.MustFromEnv()
	}
}

// WithLogger injects a logger for debug-level evaluation tracing; nil keeps
// the default silent logger.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithTranslator routes displayed messages through t using each rule's
// translation key; rules without a key keep their literal message.
func WithTranslator(t *i18n.Translator) Option {
	return func(v *Validator) {
		v.translator = t
	}
}

// WithLanguage sets the language used for translated messages. The default
// is "en".
func WithLanguage(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.lang = lang
		}
	}
}

// New binds a validator to the form matched by formSelector within doc.
// Returns ErrFormNotFound when the selector resolves to nothing. When the
// resolved form supports event listeners, a submit listener is attached: a
// submit event runs Validate, suppresses submission on failure and invokes
// the OnSubmit callback on success.
func New(doc dom.Document, formSelector string, opts ...Option) (*Validator, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	v := &Validator{
		doc:          doc,
		formSelector: formSelector,
		defaultStyle: styles.Default(),
		fields:       make(map[string]*fieldEntry),
		groups:       make(map[string]*groupEntry),
		lang:         "en",
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	form, err := doc.Resolve(formSelector)
	if err != nil {
		return nil, errors.Join(ErrFormNotFound, err)
	}
	v.form = form

	if target, ok := form.(dom.EventTarget); ok {
		target.AddEventListener(dom.EventSubmit, v.handleSubmit)
	}

	return v, nil
}

// handleSubmit gates form submission on a full validation pass. A failed
// pass, or an operational error during it, suppresses the default submission
// and stops further handling; a clean pass invokes the registered callback.
func (v *Validator) handleSubmit(e *dom.Event) {
	ok, err := v.Validate()
	if err != nil {
		v.log.Error("validation pass failed", logger.Error(err))
	}
	if err != nil || !ok {
		e.PreventDefault()
		e.StopImmediatePropagation()
		return
	}
	if v.onSubmit != nil {
		v.onSubmit()
	}
}

// OnSubmit replaces the callback invoked after a successful submit-time
// validation pass. The last registration wins; callbacks do not stack.
func (v *Validator) OnSubmit(fn func()) *Validator {
	v.onSubmit = fn
	return v
}

// resolveForm re-resolves the bound form selector so a form removed after
// construction surfaces as ErrFormNotFound at evaluation time.
func (v *Validator) resolveForm() (dom.Element, error) {
	form, err := v.doc.Resolve(v.formSelector)
	if err != nil {
		return nil, errors.Join(ErrFormNotFound, err)
	}
	v.form = form
	return form, nil
}
