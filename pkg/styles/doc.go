// Package styles describes the presentation applied to form fields and their
// message elements when validation succeeds or fails.
//
// The central type is Options, a fully-populated value object holding class
// names and inline-style text for the four visual states (error message,
// error field, success message, success field) plus an optional message
// container selector. Partial configuration is expressed with Override
// functions: Merge copies a complete base and writes only the keys an
// Override touches, so an entry's style is never a half-filled object.
//
// # Usage
//
//	st := styles.Merge(styles.Default(),
//	    styles.WithErrorFieldClass("is-invalid"),
//	    styles.WithMessageContainer("#signup-errors"),
//	)
//
// Options is a plain value type; Default returns an independent copy on every
// call and Merge never mutates its inputs, so configurations can be shared
// freely between validators, fields and groups.
//
// FromEnv builds a configuration from FORMKIT_* environment variables on top
// of the defaults, backed by the config package.
package styles
