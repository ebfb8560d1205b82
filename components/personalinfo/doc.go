// Package personalinfo provides a small net/http component that renders the
// personal info form and applies single-field updates to a resume.Store.
//
// GET and HEAD render the form pre-filled with the current store values. POST
// accepts either a form-encoded body (field=<name>&value=<v>) or a JSON body
// ({"field":"...","value":"..."}) and applies exactly one SetField with the
// value as written.
package personalinfo
