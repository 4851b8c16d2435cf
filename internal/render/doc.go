// Package render turns a game's statistics snapshot into forum thread text.
//
// Rendering is deterministic: identical inputs produce byte-identical titles
// and bodies, with one deliberate exception — the post-game title draws its
// "defeat" verb from a synonym table through an injected random source, so
// tests assert set membership instead of exact equality.
//
// Bodies are an ordered concatenation of independently optional markdown
// sections. A section whose underlying data is empty is omitted entirely,
// never rendered blank.
package render
