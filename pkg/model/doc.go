// Package model defines the typed form model consumed by form renderers. A
// FormModel lists the bindable fields of one resume section in display order;
// each Field carries its label, input widget and help text so HTML and
// terminal renderers can present the same form without knowing where the
// definition came from. Current values are attached by decorators just
// before rendering.
package model
