package ir

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
)

// The two transaction-metadata parameter names every mutating call wrapper
// reserves for itself. Declared inputs using these names are renamed to the
// fixed alternates below.
const (
	SenderParam = "sender"
	ValueParam  = "value"

	senderAlternate = "senderAccount"
	valueAlternate  = "valueAmount"
)

// SafeName maps a declared parameter name to the identifier used in generated
// code. The mapping is total and deterministic: the same declared name at the
// same position always resolves to the same identifier.
//
// Resolution order: empty names are synthesized from the position, the
// transaction-metadata names get their fixed alternates, and Go keywords get
// a trailing underscore.
func SafeName(declared string, index int) string {
	name := declared
	if name == "" {
		name = fmt.Sprintf("param%d", index)
	}
	switch name {
	case SenderParam:
		return senderAlternate
	case ValueParam:
		return valueAlternate
	}
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

// ContractName derives the canonical CamelCase contract name from the
// interface file's stem and its enclosing directory. Interface files addressed
// only by a hexadecimal contract address take their name from the directory
// instead.
func ContractName(stem, dir string) string {
	if common.IsHexAddress(stem) || strings.HasPrefix(stem, "0x") {
		return CamelCase(dir)
	}
	return CamelCase(stem)
}

// CamelCase converts a name to CamelCase. Names that already carry interior
// capitalization keep it (registerHuman -> RegisterHuman, WXDAI -> WXDAI);
// snake_case names are capitalized per word (mint_policy -> MintPolicy).
func CamelCase(name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsRune(name, '_') || strings.ContainsRune(name, '-') {
		words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()
	}
	return capitalize(name)
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
