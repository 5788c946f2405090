package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextsFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Texts(DefaultLanguage)["welcome"], Texts("de")["welcome"])
	assert.Equal(t, Texts(DefaultLanguage)["welcome"], Texts("")["welcome"])
}

func TestAllLanguagesCarryTheSameKeys(t *testing.T) {
	ru := Texts(LangRU)
	for _, lang := range []string{LangHY, LangEN} {
		other := Texts(lang)
		assert.Equal(t, len(ru), len(other), "key count mismatch for %s", lang)
		for key := range ru {
			assert.Contains(t, other, key, "missing %q in %s", key, lang)
		}
	}
}

func TestLanguageCode(t *testing.T) {
	code, ok := LanguageCode("Русский")
	assert.True(t, ok)
	assert.Equal(t, LangRU, code)

	code, ok = LanguageCode("Հայերեն")
	assert.True(t, ok)
	assert.Equal(t, LangHY, code)

	_, ok = LanguageCode("Deutsch")
	assert.False(t, ok)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "января", MonthName(LangRU, 1))
	assert.Equal(t, "December", MonthName(LangEN, 12))
	assert.Equal(t, "հունվարի", MonthName(LangHY, 1))

	// Unknown languages fall back; out-of-range months render empty.
	assert.Equal(t, "мая", MonthName("de", 5))
	assert.Empty(t, MonthName(LangRU, 0))
	assert.Empty(t, MonthName(LangRU, 13))
}

func TestShortDaysAreMondayFirst(t *testing.T) {
	for _, lang := range []string{LangRU, LangHY, LangEN} {
		assert.Len(t, ShortDays(lang), 7, lang)
	}
	assert.Equal(t, "пн", ShortDays(LangRU)[0])
	assert.Equal(t, "Mon", ShortDays(LangEN)[0])
}
