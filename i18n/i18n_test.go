package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"es", "es", true},
		{"EN", "en", true},
		{"pt-BR", "pt", true},
		{"de-AT", "de", true},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Match(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOrder(t *testing.T) {
	assert.Equal(t, "fr", Resolve("fr", "de", "it", "es"))
	assert.Equal(t, "de", Resolve("", "de", "it", "es"))
	assert.Equal(t, "it", Resolve("", "", "it-IT,it;q=0.9,en;q=0.5", "es"))
	assert.Equal(t, "en", Resolve("", "", "", "en"))
	assert.Equal(t, "es", Resolve("", "", "", "klingon!"))
}

func TestLabelFallsBack(t *testing.T) {
	assert.Equal(t, "First Name", Label("en", FirstName))
	assert.Equal(t, "Nombre", Label("xx", FirstName))
	assert.Equal(t, "unknownKey", Label("en", "unknownKey"))
}

func TestEveryLanguageHasEveryLabel(t *testing.T) {
	for _, code := range Supported() {
		for key := range labels["es"] {
			_, ok := labels[code][key]
			assert.True(t, ok, "%s missing %s", code, key)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,000 MXN", FormatAmount("en", 1000, "MXN"))
	assert.Equal(t, "2.500 MXN", FormatAmount("de", 2500, "MXN"))
	assert.Equal(t, "350", FormatAmount("en", 350, ""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Ana Ruiz", "ruiz"))
	assert.True(t, ContainsFold("ana@EXAMPLE.com", "Example"))
	assert.False(t, ContainsFold("Ana Ruiz", "perez"))
}
