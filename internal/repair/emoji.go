package repair

import (
	"regexp"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

var shortcodeRe = regexp.MustCompile(`:[^:\s]+:`)

// ExpandShortcodes turns aliases such as ":clipboard:" into their glyphs.
// Aliases are looked up as written, then lowercased; the code map is case
// sensitive (":flag_India:"). Unknown aliases are kept verbatim. Unlike
// emoji.Sprint no padding is added, so heading spacing stays as written.
func ExpandShortcodes(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}
	codes := emoji.CodeMap()
	return shortcodeRe.ReplaceAllStringFunc(s, func(alias string) string {
		if glyph, ok := codes[alias]; ok {
			return glyph
		}
		if glyph, ok := codes[strings.ToLower(alias)]; ok {
			return glyph
		}
		return alias
	})
}
