package schemas

import "strings"

// NameStyle formats a source identifier into a target naming convention.
type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

// BigCamelStyle turns snake/kebab/space separated identifiers into
// exported CamelCase: "user_id" -> "UserId", "first name" -> "FirstName".
var BigCamelStyle NameStyleFunc = func(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, "")
}

// SnakeStyle splits CamelCase identifiers on upper-case boundaries:
// "UserID" -> "user_id".
var SnakeStyle NameStyleFunc = func(name string) string {
	var words []string
	var word strings.Builder
	runes := []rune(name)
	for i, c := range runes {
		if i > 0 && isUpper(c) && !isUpper(runes[i-1]) {
			words = append(words, strings.ToLower(word.String()))
			word.Reset()
		}
		word.WriteRune(c)
	}
	if word.Len() > 0 {
		words = append(words, strings.ToLower(word.String()))
	}
	return strings.Join(words, "_")
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}
