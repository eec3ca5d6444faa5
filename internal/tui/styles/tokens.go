package styles

import (
	"strconv"
	"strings"
)

// Semantic color roles shared by every theme.
const (
	TokenBackground   = "background"
	TokenSurface      = "surface"
	TokenSurfaceMuted = "surface-muted"
	TokenText         = "text"
	TokenTextMuted    = "text-muted"
	TokenBorder       = "border"
	TokenPrimary      = "primary"
	TokenAccent       = "accent"
	TokenFocus        = "focus"
	TokenSuccess      = "success"
	TokenWarning      = "warning"
	TokenError        = "error"
	TokenInfo         = "info"
)

// SemanticTokens lists the roles every built-in palette defines.
var SemanticTokens = []string{
	TokenBackground,
	TokenSurface,
	TokenSurfaceMuted,
	TokenText,
	TokenTextMuted,
	TokenBorder,
	TokenPrimary,
	TokenAccent,
	TokenFocus,
	TokenSuccess,
	TokenWarning,
	TokenError,
	TokenInfo,
}

// TokenKind tags how a ColorToken is resolved.
type TokenKind int

const (
	// TokenSemantic is a role name looked up in the mode palette.
	TokenSemantic TokenKind = iota
	// TokenClass is a raw palette class such as "orange-600".
	TokenClass
	// TokenLiteral is already a concrete color and passes through.
	TokenLiteral
)

func (k TokenKind) String() string {
	switch k {
	case TokenClass:
		return "class"
	case TokenLiteral:
		return "literal"
	default:
		return "semantic"
	}
}

// ColorToken identifies a color either by role, palette class or value.
type ColorToken struct {
	Kind TokenKind
	Name string
}

// Semantic returns a role token.
func Semantic(name string) ColorToken {
	return ColorToken{Kind: TokenSemantic, Name: normalizeKey(name)}
}

// Class returns a palette-class token.
func Class(name string) ColorToken {
	return ColorToken{Kind: TokenClass, Name: normalizeKey(name)}
}

// Literal returns a token carrying a concrete color value.
func Literal(value string) ColorToken {
	return ColorToken{Kind: TokenLiteral, Name: strings.TrimSpace(value)}
}

// ParseToken classifies a loosely typed color string.
//
// Hex values ("#112233") and ANSI indexes ("212") are literals, strings of
// the form family-shade ("orange-600") are palette classes, and everything
// else is treated as a semantic role.
func ParseToken(raw string) ColorToken {
	value := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(value, "#"):
		return Literal(value)
	case isANSIIndex(value):
		return Literal(value)
	case isClassName(value):
		return Class(value)
	default:
		return Semantic(value)
	}
}

func (t ColorToken) String() string {
	return t.Name
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isANSIIndex(value string) bool {
	if value == "" || len(value) > 3 {
		return false
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

func isClassName(value string) bool {
	idx := strings.LastIndex(value, "-")
	if idx <= 0 || idx == len(value)-1 {
		return false
	}
	shade := value[idx+1:]
	for _, r := range shade {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
