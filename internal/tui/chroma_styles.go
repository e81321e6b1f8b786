package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ChromaTheme is the code block theme used when rendering assistant replies.
const ChromaTheme = "catppuccin-mocha"

func init() {
	// Based on https://github.com/catppuccin/chroma
	styles.Register(chroma.MustNewStyle(ChromaTheme, chroma.StyleEntries{
		chroma.Text:                "#cdd6f4",
		chroma.Error:               "#f38ba8",
		chroma.Comment:             "#6c7086 italic",
		chroma.CommentPreproc:      "#f5e0dc",
		chroma.Keyword:             "#cba6f7",
		chroma.KeywordType:         "#f9e2af",
		chroma.Operator:            "#89dceb",
		chroma.Punctuation:         "#9399b2",
		chroma.Name:                "#cdd6f4",
		chroma.NameBuiltin:         "#fab387",
		chroma.NameFunction:        "#89b4fa",
		chroma.NameTag:             "#cba6f7",
		chroma.NameAttribute:       "#f9e2af",
		chroma.LiteralString:       "#a6e3a1",
		chroma.LiteralStringEscape: "#f5c2e7",
		chroma.LiteralNumber:       "#fab387",
		chroma.GenericHeading:      "#89b4fa bold",
		chroma.GenericSubheading:   "#a6adc8 bold",
		chroma.GenericDeleted:      "#f38ba8",
		chroma.GenericInserted:     "#a6e3a1",
		chroma.GenericEmph:         "italic",
		chroma.GenericStrong:       "bold",
		chroma.Background:          "", // Transparent background
	}))
}
