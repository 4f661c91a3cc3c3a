package formkit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/logger"
	"github.com/kohguanzeh/formkit/pkg/rules"
	"github.com/kohguanzeh/formkit/pkg/styles"
)

// ValidateField evaluates the rules registered for selector, in insertion
// order, against the field it resolves to inside the form. The first failing
// rule decides the outcome: its message is shown in the field's message
// element, error styling is applied and false is returned; remaining rules
// are not evaluated. When every rule passes the message is hidden, success
// styling is applied and true is returned.
//
// Operational failures are reported as errors: ErrFormNotFound when the form
// selector no longer resolves, ErrFieldNotRegistered for a selector never
// passed to AddField, and ErrNotAnInput when the selector resolves to
// nothing input-capable within the form.
func (v *Validator) ValidateField(selector string) (bool, error) {
	form, err := v.resolveForm()
	if err != nil {
		return false, err
	}

	entry, ok := v.fields[selector]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrFieldNotRegistered, selector)
	}

	field, err := form.Find(selector)
	if err != nil {
		if errors.Is(err, dom.ErrNoMatch) {
			return false, fmt.Errorf("%w: nothing matches %s in the form", ErrNotAnInput, selector)
		}
		return false, err
	}
	if !inputCapable(field) {
		return false, fmt.Errorf("%w: %s resolves to <%s>", ErrNotAnInput, selector, field.Tag())
	}

	if entry.message == nil {
		msg, err := v.createMessageElement(form, field, entry)
		if err != nil {
			return false, err
		}
		entry.message = msg
		entry.originalStyle = field.Style()
	}

	entry.evaluated = true
	if failed := rules.Eval(field, entry.rules...); failed != nil {
		entry.valid = false
		entry.lastMessage = v.messageText(failed)
		v.showFieldError(field, entry)
		v.log.Debug("field invalid", logger.Selector(selector), logger.RuleName(failed.Name))
		return false, nil
	}

	entry.valid = true
	entry.lastMessage = ""
	v.showFieldSuccess(field, entry)
	v.log.Debug("field valid", logger.Selector(selector))
	return true, nil
}

// ValidateRequiredGroup evaluates the group registered under name: it is
// valid when at least one input in the form carrying that name attribute is
// checked. Text-type inputs under the same name are never checked and do not
// count. Returns ErrGroupNotRegistered for an unknown name.
func (v *Validator) ValidateRequiredGroup(name string) (bool, error) {
	form, err := v.resolveForm()
	if err != nil {
		return false, err
	}

	entry, ok := v.groups[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrGroupNotRegistered, name)
	}

	members, err := form.FindAll(fmt.Sprintf("[name=%q]", name))
	if err != nil {
		return false, err
	}

	checked := false
	for _, member := range members {
		if member.Checked() {
			checked = true
			break
		}
	}

	entry.evaluated = true
	entry.valid = checked
	v.log.Debug("group evaluated", logger.GroupName(name), "valid", checked)
	return checked, nil
}

// Validate evaluates every registered field and then every registered group,
// in registration order, and reports whether all of them passed. There is no
// short-circuit across entries: each one is evaluated so its visual state
// refreshes and the user sees every simultaneous problem. The first
// operational error aborts the pass.
func (v *Validator) Validate() (bool, error) {
	all := true

	for _, selector := range v.fieldOrder {
		ok, err := v.ValidateField(selector)
		if err != nil {
			return false, err
		}
		all = all && ok
	}
	for _, name := range v.groupOrder {
		ok, err := v.ValidateRequiredGroup(name)
		if err != nil {
			return false, err
		}
		all = all && ok
	}

	v.log.Debug("validation pass complete",
		"valid", all,
		"fields", len(v.fieldOrder),
		"groups", len(v.groupOrder),
	)
	return all, nil
}

// createMessageElement builds the hidden message element for a field. It
// lands in the entry's message container when one is configured and present,
// otherwise under the field's parent. The element carries a generated id
// linked back to the field through aria-describedby.
func (v *Validator) createMessageElement(form, field dom.Element, entry *fieldEntry) (dom.Element, error) {
	msg := v.doc.CreateElement("span")
	id := "formkit-msg-" + uuid.NewString()
	msg.SetAttr("id", id)
	msg.SetVisible(false)

	parent := field.Parent()
	if entry.style.MessageContainer != "" {
		container, err := form.Find(entry.style.MessageContainer)
		switch {
		case err == nil:
			parent = container
		case errors.Is(err, dom.ErrNoMatch):
			v.log.Warn("message container not found, using the field's parent",
				logger.Selector(entry.style.MessageContainer))
		default:
			return nil, err
		}
	}
	if parent == nil {
		parent = form
	}

	parent.AppendChild(msg)
	field.SetAttr("aria-describedby", id)
	return msg, nil
}

func (v *Validator) showFieldError(field dom.Element, entry *fieldEntry) {
	st := entry.style

	entry.message.SetText(entry.lastMessage)
	entry.message.RemoveClass(st.SuccessMsgClass)
	entry.message.AddClass(st.ErrorMsgClass)
	entry.message.SetStyle(st.ErrorMsgStyle)
	entry.message.SetVisible(true)

	field.RemoveClass(st.SuccessFieldClass)
	field.AddClass(st.ErrorFieldClass)
	field.SetStyle(styles.Compose(entry.originalStyle, st.ErrorFieldStyle))
}

func (v *Validator) showFieldSuccess(field dom.Element, entry *fieldEntry) {
	st := entry.style

	entry.message.SetVisible(false)
	entry.message.RemoveClass(st.ErrorMsgClass)
	entry.message.AddClass(st.SuccessMsgClass)
	entry.message.SetStyle(st.SuccessMsgStyle)

	field.RemoveClass(st.ErrorFieldClass)
	field.AddClass(st.SuccessFieldClass)
	field.SetStyle(styles.Compose(entry.originalStyle, st.SuccessFieldStyle))
}

// messageText resolves the text displayed for a failed rule, consulting the
// translator when one is configured and falling back to the rule's literal
// message.
func (v *Validator) messageText(r *rules.Rule) string {
	if v.translator == nil || r.TranslationKey == "" {
		return r.Message
	}

	args := make([]string, 0, len(r.TranslationValues)*2)
	for name, value := range r.TranslationValues {
		args = append(args, name, fmt.Sprint(value))
	}
	return v.translator.Td(v.lang, r.TranslationKey, r.Message, args...)
}

func inputCapable(el dom.Element) bool {
	switch el.Tag() {
	case "input", "textarea", "select":
		return true
	}
	return false
}
