package renderer

import (
	"regexp"
	"strings"

	"heightmap/pkg/game/i18n"
)

// markupFunctions matches FUNC{operand} spans in message templates
var markupFunctions = regexp.MustCompile(`([A-Z_]*)\{([^{}]+)\}`)

// StyleFunc renders the operand of a markup function such as KEY{q}
type StyleFunc func(function, operand string) string

// ExpandMarkup resolves GT{KEY} spans to translations and hands every other
// span to style. A nil style leaves operands unstyled.
func ExpandMarkup(msg string, style StyleFunc) string {
	ret := msg
	for _, match := range markupFunctions.FindAllStringSubmatch(msg, -1) {
		function, operand := match[1], match[2]

		var val string
		switch {
		case function == "GT":
			val = i18n.T(operand)
		case style != nil:
			val = style(function, operand)
		default:
			val = operand
		}
		ret = strings.Replace(ret, match[0], val, 1)
	}
	return ret
}

// PlainText expands markup without styling
func PlainText(msg string) string {
	return ExpandMarkup(msg, nil)
}
