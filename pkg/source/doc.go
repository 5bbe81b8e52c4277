// Package source locates class strings in JavaScript, TypeScript and JSX
// files.
//
// A small JSX-aware lexer walks the file and the extractor keeps every
// string literal and template chunk that sits in a class position:
//
//   - the value of a className or class attribute, quoted or inside {...}
//   - any literal inside a call to a class-joining helper (clsx, cn, ...)
//
// Each literal becomes one core.ClassSource whose position points at its
// first byte, so fixes computed on the literal map straight back onto the
// file. JSX text, comments and regular expressions never produce sources.
// Whitespace escapes inside JS literals (\n, \t, ...) are blanked to spaces
// in place, so "h-8\nw-10" yields two classes without shifting offsets.
//
// Files are optionally parsed with esbuild first; a file esbuild rejects is
// reported as a *SyntaxError instead of being scanned.
package source
