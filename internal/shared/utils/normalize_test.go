package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDiacritics(t *testing.T) {
	cases := map[string]string{
		"Apologética":      "Apologetica",
		"oração":           "oracao",
		"Evangelización":   "Evangelizacion",
		"São Paulo":        "Sao Paulo",
		"plain ascii":      "plain ascii",
		"":                 "",
		"niño señal güero": "nino senal guero",
	}
	for input, want := range cases {
		require.Equal(t, want, RemoveDiacritics(input), "input %q", input)
	}
}

func TestNormalizeTag(t *testing.T) {
	require.Equal(t, "apologetica", NormalizeTag("  Apologética "))
	require.Equal(t, "apologetica", NormalizeTag("APOLOGETICA"))
	require.Equal(t, "vida cristiana", NormalizeTag("Vida Cristiana"))
	require.Equal(t, "", NormalizeTag("   "))
}

func TestTagsMatch(t *testing.T) {
	require.True(t, TagsMatch("Apologética", "apologetica"))
	require.True(t, TagsMatch("ORAÇÃO", "oracao"))
	require.False(t, TagsMatch("oracion", "oracao"))
	// Exact match only, not substring.
	require.False(t, TagsMatch("fe", "fe y obras"))
}

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Estudio Bíblico: Juan 3":    "estudio-biblico-juan-3",
		"Noche de Oración":           "noche-de-oracion",
		"  Retiro   2026  ":          "retiro-2026",
		"¿Qué es la fe?":             "que-es-la-fe",
		"Conferência de Jovens (SP)": "conferencia-de-jovens-sp",
		"---":                        "",
	}
	for input, want := range cases {
		require.Equal(t, want, GenerateSlug(input), "input %q", input)
	}
}
