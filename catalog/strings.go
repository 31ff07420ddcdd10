package catalog

import (
	"strings"

	"github.com/gogpu/nle/node"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"
)

// Strings are the display strings of a node in one language.
type Strings struct {
	Name        string
	Category    string
	Description string
}

// translations holds the node strings and input names per language.
// English is the source language and needs no entries.
var translations = map[language.Tag]map[string]string{
	language.German: {
		"Math":   "Mathematik",
		"Method": "Methode",
		"Value":  "Wert",
		"Perform a mathematical operation between two values.": "Führt eine mathematische Operation zwischen zwei Werten aus.",
	},
	language.French: {
		"Math":   "Mathématiques",
		"Method": "Méthode",
		"Value":  "Valeur",
		"Perform a mathematical operation between two values.": "Effectue une opération mathématique entre deux valeurs.",
	},
}

var (
	messages  = buildMessages()
	languages = append([]language.Tag{language.English}, messages.Languages()...)
	matcher   = language.NewMatcher(languages)
)

func buildMessages() *textcatalog.Builder {
	b := textcatalog.NewBuilder(textcatalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, escape(key), escape(msg)); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Languages returns the supported languages, English first.
func Languages() []language.Tag {
	out := make([]language.Tag, len(languages))
	copy(out, languages)
	return out
}

// Printer returns a printer for the supported language closest to tag.
func Printer(tag language.Tag) *message.Printer {
	_, i, _ := matcher.Match(tag)
	return message.NewPrinter(languages[i], message.Catalog(messages))
}

// Lookup returns the display strings of n in the language closest to tag.
func Lookup(n node.Node, tag language.Tag) Strings {
	p := Printer(tag)
	return Strings{
		Name:        p.Sprintf(escape(n.Name())),
		Category:    p.Sprintf(escape(n.Category())),
		Description: p.Sprintf(escape(n.Description())),
	}
}

// escape quotes verbs so node text is printed literally.
func escape(s string) string { return strings.ReplaceAll(s, "%", "%%") }

// Localize renames the inputs of n for tag when n supports it, and returns
// its display strings.
func Localize(n node.Node, tag language.Tag) Strings {
	if t, ok := n.(node.Translatable); ok {
		t.Retranslate(Printer(tag))
	}
	return Lookup(n, tag)
}
