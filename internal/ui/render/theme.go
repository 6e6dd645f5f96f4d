package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderFg    tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	InfoMode    tcell.Color
	InfoOwner   tcell.Color
	InfoGroup   tcell.Color
	InfoTime    tcell.Color
	InfoSize    tcell.Color
	NoticeFg    tcell.Color
	EditorValid tcell.Color
	EditorBad   tcell.Color
	GhostFg     tcell.Color

	CodeKeyword tcell.Color
	CodeString  tcell.Color
	CodeNumber  tcell.Color
	CodeComment tcell.Color
	CodeName    tcell.Color
}

// DefaultTheme returns the default color scheme.
func DefaultTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderFg:    tcell.ColorGreen,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		InfoMode:    tcell.ColorRed,
		InfoOwner:   tcell.ColorGreen,
		InfoGroup:   tcell.ColorYellow,
		InfoTime:    tcell.ColorAqua,
		InfoSize:    tcell.ColorFuchsia,
		NoticeFg:    tcell.ColorRed,
		EditorValid: tcell.ColorGreen,
		EditorBad:   tcell.ColorRed,
		GhostFg:     tcell.ColorGray,
		CodeKeyword: tcell.Color33,
		CodeString:  tcell.ColorGreen,
		CodeNumber:  tcell.ColorFuchsia,
		CodeComment: tcell.ColorGray,
		CodeName:    tcell.Color44,
	}
}
