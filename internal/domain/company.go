package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Company es la entidad del host a tokenizar. La identidad (ID, Name) es
// estable entre enumeraciones — de ella se deriva el par name/symbol.
type Company struct {
	ID   int
	Name string
}

// TokenIdentity deriva el nombre y símbolo del token de forma determinista:
// la misma compañía produce siempre el mismo par.
func (c Company) TokenIdentity() (name, symbol string) {
	name = strings.TrimSpace(c.Name)
	if name == "" {
		name = fmt.Sprintf("Company %d", c.ID)
	}
	symbol = deriveSymbol(name)
	if symbol == "" {
		symbol = fmt.Sprintf("CO%d", c.ID)
	}
	return name, symbol
}

// deriveSymbol toma la inicial de hasta cuatro palabras del nombre.
// Para nombres de una sola palabra usa sus primeras cuatro letras.
func deriveSymbol(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(words) == 1 {
		for i, r := range []rune(words[0]) {
			if i >= 4 {
				break
			}
			sb.WriteRune(unicode.ToUpper(r))
		}
	} else {
		for i, w := range words {
			if i >= 4 {
				break
			}
			sb.WriteRune(unicode.ToUpper([]rune(w)[0]))
		}
	}
	return sb.String()
}
