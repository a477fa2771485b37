// Package core holds small building blocks shared by the app and ui layers.
package core

// Field is one labelled value shown on the HUD.
type Field struct {
	Key   string
	Label string
	Value string
}

// FieldGroup clusters related fields for presentation purposes.
type FieldGroup struct {
	Name   string
	Fields []Field
}

// PanelSnapshot captures everything the info panel displays.
type PanelSnapshot struct {
	Title  string
	Groups []FieldGroup
}
