// Package richtext renders the constrained HTML subset used by resume rich
// text fields (summary, descriptions).
//
// Content goes through two phases. Before a component is mounted the
// renderer emits a plain-text fallback produced by stripping tags and
// collapsing entities, which needs no live document to compute. Once mounted
// the content is parsed with the tolerant golang.org/x/net/html parser and
// mapped onto a small tree of typed nodes:
//
//	ul           -> KindUnorderedList
//	ol           -> KindOrderedList
//	li           -> KindListItem
//	strong, b    -> KindBold
//	br           -> KindLineBreak
//	div, p       -> KindBlock
//	anything else -> KindInline
//
// Every node carries its positional index among its siblings as Key so host
// renderers can reconcile children. Parsing never fails; malformed markup is
// recovered by the parser and unknown tags degrade to KindInline.
package richtext
