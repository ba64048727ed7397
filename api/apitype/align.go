package apitype

import (
	"fmt"
	"strings"
)

// Align is a bitmask selecting where drawn content is anchored inside its
// bounds. Horizontal and vertical flags are combined with |.
type Align int

const (
	AlignCenter Align = 1 << iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight

	AlignTopLeft     = AlignTop | AlignLeft
	AlignTopRight    = AlignTop | AlignRight
	AlignBottomLeft  = AlignBottom | AlignLeft
	AlignBottomRight = AlignBottom | AlignRight
)

var alignNames = map[string]Align{
	"center": AlignCenter,
	"top":    AlignTop,
	"bottom": AlignBottom,
	"left":   AlignLeft,
	"right":  AlignRight,
}

func (s Align) IsLeft() bool {
	return s&AlignLeft != 0
}

func (s Align) IsRight() bool {
	return s&AlignRight != 0
}

func (s Align) IsTop() bool {
	return s&AlignTop != 0
}

func (s Align) IsBottom() bool {
	return s&AlignBottom != 0
}

func (s Align) String() string {
	var parts []string
	if s.IsTop() {
		parts = append(parts, "top")
	} else if s.IsBottom() {
		parts = append(parts, "bottom")
	}
	if s.IsLeft() {
		parts = append(parts, "left")
	} else if s.IsRight() {
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "center"
	}
	return strings.Join(parts, "-")
}

// ParseAlign accepts names such as "center", "top-left" or "bottom|right".
func ParseAlign(value string) (Align, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownAlign)
	}

	var align Align
	for _, name := range strings.FieldsFunc(value, isAlignSeparator) {
		flag, ok := alignNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: '%s'", ErrUnknownAlign, name)
		}
		align |= flag
	}
	return align, nil
}

func isAlignSeparator(r rune) bool {
	return r == '-' || r == '|' || r == ',' || r == ' '
}
