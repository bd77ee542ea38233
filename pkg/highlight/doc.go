/*
Package highlight turns text annotated with bracketed highlight codes into
styled HTML.

AI responses mark semantic categories with short tags:

	This is [Y]important[/Y] and [B]a concept[/B].

Render converts every matched pair into an inline-styled span, colored from
a palette:

	html := highlight.Render(text, types.ModeHighlights, palette.Vibrant)

# Pipeline

 1. Fenced code regions (``` ... ```) are set aside so nothing inside them
    is reinterpreted. They are put back verbatim at the very end.
 2. Sanitize drops invented full-word tags such as [GREEN]...[/GREEN] and
    removes orphaned opening or closing tags, one independent pass per code.
 3. The markdown pass converts **bold**, *italic* and `inline code`.
 4. The text is split into tag and text tokens and resolved with an
    explicit stack: a closing tag matches the most recently opened tag of
    the same code, which need not be the top of the stack.

The package is total over its input: it never fails and never panics. Codes
outside the fixed set (e.g. [Z]) pass through untouched, unmatched opening
tags vanish, unmatched closing tags are dropped.

Output is not escaped. Input is assumed trusted.

All functions are safe for concurrent use.
*/
package highlight
