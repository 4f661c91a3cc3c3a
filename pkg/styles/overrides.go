package styles

// Override writes a single key into an Options copy during Merge. A set of
// Overrides is the partial configuration: only the keys explicitly supplied
// are changed, everything else keeps the base value.
type Override func(*Options)

func WithErrorMsgClass(class string) Override {
	return func(o *Options) { o.ErrorMsgClass = class }
}

func WithErrorMsgStyle(style string) Override {
	return func(o *Options) { o.ErrorMsgStyle = style }
}

func WithErrorFieldClass(class string) Override {
	return func(o *Options) { o.ErrorFieldClass = class }
}

func WithErrorFieldStyle(style string) Override {
	return func(o *Options) { o.ErrorFieldStyle = style }
}

func WithSuccessMsgClass(class string) Override {
	return func(o *Options) { o.SuccessMsgClass = class }
}

func WithSuccessMsgStyle(style string) Override {
	return func(o *Options) { o.SuccessMsgStyle = style }
}

func WithSuccessFieldClass(class string) Override {
	return func(o *Options) { o.SuccessFieldClass = class }
}

func WithSuccessFieldStyle(style string) Override {
	return func(o *Options) { o.SuccessFieldStyle = style }
}

// WithMessageContainer replaces the message container selector wholesale; it
// is a single reference, not a composite, so there is nothing to merge.
func WithMessageContainer(selector string) Override {
	return func(o *Options) { o.MessageContainer = selector }
}
