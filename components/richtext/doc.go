// Package richtext exposes the rich text renderer over HTTP.
//
// POST accepts a JSON body {"content":"...","style":{...},"phase":"mounted"}
// and GET reads the content and phase query parameters. Both reply with the
// rendered output as JSON: the phase, the plain-text fallback, the node tree
// and the serialised HTML. The browser runtime calls this endpoint after page
// load to swap pre-mount fallbacks for the mounted rendering.
package richtext
