// Package dom defines the document capability surface the validator works
// against, so validation logic stays testable without a UI runtime.
//
// Document and Element are small interfaces covering exactly what form
// validation needs: selector resolution, element creation, input state
// (value, checked), attributes, classes, inline style, visibility and child
// placement. NewMemoryDocument returns the in-process implementation used in
// tests and for markup imported by the htmlform package; an adapter can wrap
// any runtime that answers the same questions.
//
// Elements that support event listeners additionally implement EventTarget,
// discovered with a type assertion the way http.ResponseWriter
// implementations expose http.Flusher. Event models a cancellable document
// event: listeners run in registration order, PreventDefault suppresses the
// default action and StopImmediatePropagation halts delivery.
//
// Selector support is a CSS subset sufficient for form work: tag, #id,
// .class, [attr], [attr=value] (value optionally quoted), compounds of those
// and the descendant combinator. Anything else returns ErrBadSelector.
//
// The package is single-threaded on purpose: documents are touched only from
// synchronous evaluation runs, matching the serialized event dispatch of UI
// runtimes, so there is no locking.
package dom
