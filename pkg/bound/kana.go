package bound

import (
	"errors"
	"unicode"
)

// ErrNotKana indicates a string containing characters other than kana.
var ErrNotKana = errors.New("string must consist of kana characters")

// Kana is a non-empty string of hiragana or katakana. The prolonged sound mark,
// the middle dot and spaces are also accepted so that furigana of names can be written
// as people spell them.
type Kana struct {
	value String
}

// NewKana validates s as a kana string of at most max runes.
func NewKana(s string, max int) (Kana, error) {
	v, err := NewNonEmptyString(s, max)
	if err != nil {
		return Kana{}, err
	}
	for _, r := range s {
		if !isKanaRune(r) {
			return Kana{}, ErrNotKana
		}
	}
	return Kana{value: v}, nil
}

// MustKana creates a Kana, panicking if invalid.
func MustKana(s string, max int) Kana {
	k, err := NewKana(s, max)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Kana) Value() string {
	return k.value.Value()
}

func (k Kana) String() string {
	return k.value.Value()
}

func isKanaRune(r rune) bool {
	switch r {
	case 'ー', '・', ' ', '　':
		return true
	}
	return unicode.In(r, unicode.Hiragana, unicode.Katakana)
}
