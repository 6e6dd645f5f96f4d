package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
)

// Span is a run of preview text sharing one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one preview line as styled spans.
type Line struct {
	Spans []Span
}

// HighlightText tokenizes text with the lexer for language and converts
// token runs into styled lines. Unknown languages and tokenizer failures
// degrade to unstyled lines; previews never fail over styling.
func HighlightText(text, language string, theme ColorTheme) []Line {
	lexer := lexers.Get(language)
	if lexer == nil {
		return plainLines(text)
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return plainLines(text)
	}

	var lines []Line
	current := Line{}
	for _, token := range iterator.Tokens() {
		style := tokenStyle(token.Type, theme)
		value := token.Value
		for {
			idx := strings.IndexByte(value, '\n')
			if idx < 0 {
				break
			}
			if idx > 0 {
				current.Spans = append(current.Spans, Span{Text: value[:idx], Style: style})
			}
			lines = append(lines, current)
			current = Line{}
			value = value[idx+1:]
		}
		if value != "" {
			current.Spans = append(current.Spans, Span{Text: value, Style: style})
		}
	}
	if len(current.Spans) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func plainLines(text string) []Line {
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		if s != "" {
			lines[i].Spans = []Span{{Text: s, Style: tcell.StyleDefault}}
		}
	}
	return lines
}

func tokenStyle(t chroma.TokenType, theme ColorTheme) tcell.Style {
	base := tcell.StyleDefault
	switch {
	case t.InCategory(chroma.Keyword):
		return base.Foreground(theme.CodeKeyword).Bold(true)
	case t.InSubCategory(chroma.LiteralString):
		return base.Foreground(theme.CodeString)
	case t.InSubCategory(chroma.LiteralNumber):
		return base.Foreground(theme.CodeNumber)
	case t.InCategory(chroma.Comment):
		return base.Foreground(theme.CodeComment)
	case t == chroma.NameFunction || t == chroma.NameClass:
		return base.Foreground(theme.CodeName)
	default:
		return base
	}
}
