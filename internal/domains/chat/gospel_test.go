package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGospelStepsLocaleSelection(t *testing.T) {
	es := GospelSteps("es")
	require.Len(t, es, 4)
	require.Equal(t, "Dios te ama", es[0].Title)

	pt := GospelSteps("pt")
	require.Len(t, pt, 4)
	require.Equal(t, "Deus te ama", pt[0].Title)

	// Unknown locales fall back to Spanish.
	require.Equal(t, es, GospelSteps("fr"))
	require.Equal(t, es, GospelSteps(""))
}

func TestGospelStepsSequentialIndexes(t *testing.T) {
	for _, locale := range []string{"es", "pt"} {
		steps := GospelSteps(locale)
		for i, step := range steps {
			require.Equal(t, i+1, step.Index, "locale %s", locale)
			require.NotEmpty(t, step.Title)
			require.NotEmpty(t, step.Scripture)
			require.NotEmpty(t, step.Body)
		}
	}
}

func TestGospelStepAt(t *testing.T) {
	step, err := GospelStepAt("pt", 3)
	require.NoError(t, err)
	require.Equal(t, "Cristo morreu por você", step.Title)

	_, err = GospelStepAt("es", 0)
	require.ErrorIs(t, err, ErrStepNotFound)

	_, err = GospelStepAt("es", 5)
	require.ErrorIs(t, err, ErrStepNotFound)
}
