package preview

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Classify names the source language of content: filename match first,
// content analysis second, plaintext as the fallback.
func Classify(path, content string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return lexer.Config().Name
}
