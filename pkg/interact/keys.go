package interact

import "strings"

// TokenKind distinguishes literal characters from named special keys.
type TokenKind int

const (
	// TokenChar is a single literal character to insert.
	TokenChar TokenKind = iota
	// TokenKey is a named special key, e.g. "enter".
	TokenKey
)

// Token is one unit of a typing instruction.
type Token struct {
	Kind TokenKind
	Char rune   // set for TokenChar
	Name string // set for TokenKey, always lowercase
}

// Tokenize scans an instruction string left to right. "\{" escapes to a
// literal '{'. "{name}" becomes a special-key token with the name
// lowercased. An unterminated '{' is not special and falls through as a
// literal '{'. Everything else is one literal-character token per rune.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '{' {
			tokens = append(tokens, Token{Kind: TokenChar, Char: '{'})
			i++
			continue
		}
		if r == '{' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end > i+1 {
				name := strings.ToLower(string(runes[i+1 : end]))
				tokens = append(tokens, Token{Kind: TokenKey, Name: name})
				i = end
				continue
			}
		}
		tokens = append(tokens, Token{Kind: TokenChar, Char: r})
	}
	return tokens
}

// KeyDef is one entry of the special-key table: the event-level key
// identifier, the physical code, and the literal character the key inserts,
// if any.
type KeyDef struct {
	Key  string
	Code string
	Char string
}

var specialKeys = map[string]KeyDef{
	"enter":      {Key: "Enter", Code: "Enter"},
	"tab":        {Key: "Tab", Code: "Tab"},
	"shift+tab":  {Key: "Tab", Code: "Tab"},
	"backspace":  {Key: "Backspace", Code: "Backspace"},
	"delete":     {Key: "Delete", Code: "Delete"},
	"esc":        {Key: "Escape", Code: "Escape"},
	"escape":     {Key: "Escape", Code: "Escape"},
	"space":      {Key: " ", Code: "Space", Char: " "},
	"arrowleft":  {Key: "ArrowLeft", Code: "ArrowLeft"},
	"arrowright": {Key: "ArrowRight", Code: "ArrowRight"},
	"arrowup":    {Key: "ArrowUp", Code: "ArrowUp"},
	"arrowdown":  {Key: "ArrowDown", Code: "ArrowDown"},
}

// LookupKey resolves a lowercased special-key name. Unlisted names are not
// an error: they pass through literally as "{name}" at dispatch time.
func LookupKey(name string) (KeyDef, bool) {
	def, ok := specialKeys[name]
	return def, ok
}
