// Package plural selects grammatical number forms for counted nouns.
//
// The rule partitions counts by their last one and two digits into three
// forms, which is how Russian (and most East Slavic languages) inflect nouns
// after numerals.
package plural

import "strconv"

// Forms is a noun triple: the form used after 1, after 2-4 and after 5-20.
type Forms struct {
	One  string
	Few  string
	Many string
}

// Presets used across the catalog screens.
var (
	MaterialForms  = Forms{One: "материал", Few: "материала", Many: "материалов"}
	ViewForms      = Forms{One: "просмотр", Few: "просмотра", Many: "просмотров"}
	LikeForms      = Forms{One: "лайк", Few: "лайка", Many: "лайков"}
	PageForms      = Forms{One: "страница", Few: "страницы", Many: "страниц"}
	CharacterForms = Forms{One: "символ", Few: "символа", Many: "символов"}
)

// Select returns the form matching count.
func (f Forms) Select(count int) string {
	if count < 0 {
		count = -count
	}
	mod10 := count % 10
	mod100 := count % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return f.One
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20):
		return f.Few
	default:
		return f.Many
	}
}

// Format renders "<count> <form>".
func (f Forms) Format(count int) string {
	return strconv.Itoa(count) + " " + f.Select(count)
}

// Format renders count followed by the matching noun form.
func Format(count int, one, few, many string) string {
	return Forms{One: one, Few: few, Many: many}.Format(count)
}

// Materials formats a material count, e.g. "21 материал".
func Materials(count int) string { return MaterialForms.Format(count) }

// Views formats a view count.
func Views(count int) string { return ViewForms.Format(count) }

// Likes formats a like count.
func Likes(count int) string { return LikeForms.Format(count) }
