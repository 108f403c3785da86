// Package model defines the core domain models used throughout the application.
package model

// FieldKind identifies the control type of a form field.
type FieldKind string

// Field kind constants.
const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindURL      FieldKind = "url"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindCheckbox FieldKind = "checkbox"
	KindRadio    FieldKind = "radio"
	KindFile     FieldKind = "file"
)

// SelectOption is one value/text pair from a select control.
type SelectOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// FieldDescriptor is an immutable snapshot of a form control. It carries the
// extracted attributes only; the pipeline never touches a live DOM element.
type FieldDescriptor struct {
	Kind        FieldKind      `json:"kind"`
	Name        string         `json:"name"`
	DomID       string         `json:"domId"`
	Placeholder string         `json:"placeholder"`
	Label       string         `json:"label"`
	Options     []SelectOption `json:"options,omitempty"`
	Required    bool           `json:"required"`
}

// SearchText returns the lower-cased concatenation of the field's
// identifying attributes, the text all pattern matching runs against.
func (f FieldDescriptor) SearchText() string {
	return normalizeSearchText(f.Name, f.DomID, f.Placeholder, f.Label)
}
