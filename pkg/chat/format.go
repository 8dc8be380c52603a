// Package chat handles the legacy section-sign formatting codes that game
// clients understand in chat messages.
package chat

import (
	"strings"

	"github.com/fatih/color"
)

// SectionSign introduces a formatting code in a chat message.
const SectionSign = '§'

// Color is a single legacy formatting code character.
type Color rune

const (
	Black       Color = '0'
	DarkBlue    Color = '1'
	DarkGreen   Color = '2'
	DarkAqua    Color = '3'
	DarkRed     Color = '4'
	DarkPurple  Color = '5'
	Gold        Color = '6'
	Gray        Color = '7'
	DarkGray    Color = '8'
	Blue        Color = '9'
	Green       Color = 'a'
	Aqua        Color = 'b'
	Red         Color = 'c'
	LightPurple Color = 'd'
	Yellow      Color = 'e'
	White       Color = 'f'

	Obfuscated    Color = 'k'
	Bold          Color = 'l'
	Strikethrough Color = 'm'
	Underline     Color = 'n'
	Italic        Color = 'o'
	Reset         Color = 'r'
)

var ansiAttrs = map[Color]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkAqua:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkPurple:  color.FgMagenta,
	Gold:        color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Aqua:        color.FgHiCyan,
	Red:         color.FgHiRed,
	LightPurple: color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,

	Obfuscated:    color.BlinkSlow,
	Bold:          color.Bold,
	Strikethrough: color.CrossedOut,
	Underline:     color.Underline,
	Italic:        color.Italic,
}

// Code returns the two-character code, e.g. "§a".
func (c Color) Code() string {
	return string([]rune{SectionSign, rune(c)})
}

func (c Color) String() string {
	return c.Code()
}

// Prefix returns text preceded by the color code.
func (c Color) Prefix(text string) string {
	return c.Code() + text
}

// IsColor reports whether c selects a text color rather than a style.
func (c Color) IsColor() bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// Valid reports whether c is a known formatting code.
func (c Color) Valid() bool {
	if c == Reset {
		return true
	}
	_, ok := ansiAttrs[c]
	return ok
}

func parseCode(r rune) (Color, bool) {
	c := Color(r)
	if r >= 'A' && r <= 'Z' {
		c = Color(r - 'A' + 'a')
	}
	return c, c.Valid()
}

// Strip removes every known formatting code from text.
func Strip(text string) string {
	if !strings.ContainsRune(text, SectionSign) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == SectionSign && i+1 < len(runes) {
			if _, ok := parseCode(runes[i+1]); ok {
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// ToANSI renders formatting codes as terminal escape sequences.
// A color code clears active styles, matching client behaviour.
func ToANSI(text string) string {
	if !strings.ContainsRune(text, SectionSign) {
		return text
	}

	var (
		out   strings.Builder
		seg   strings.Builder
		attrs []color.Attribute
	)
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		if len(attrs) == 0 {
			out.WriteString(seg.String())
		} else {
			c := color.New(attrs...)
			c.EnableColor()
			out.WriteString(c.Sprint(seg.String()))
		}
		seg.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == SectionSign && i+1 < len(runes) {
			if code, ok := parseCode(runes[i+1]); ok {
				flush()
				switch {
				case code == Reset:
					attrs = nil
				case code.IsColor():
					attrs = []color.Attribute{ansiAttrs[code]}
				default:
					attrs = append(attrs, ansiAttrs[code])
				}
				i++
				continue
			}
		}
		seg.WriteRune(runes[i])
	}
	flush()
	return out.String()
}
