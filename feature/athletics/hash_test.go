package athletics

import (
	"testing"
	"time"

	"campus-sync/feature/athletics/models"

	"github.com/stretchr/testify/assert"
)

func TestEventKey(t *testing.T) {
	day := time.Date(2024, time.September, 10, 16, 0, 0, 0, time.UTC)

	t.Run("Format", func(t *testing.T) {
		key := EventKey("Varsity Soccer", models.KindPractice, day)
		assert.Equal(t, "Varsity Soccer:practice:9-10-2024", key)
	})

	t.Run("Same Team Kind And Day Yields Same Key", func(t *testing.T) {
		morning := time.Date(2024, time.September, 10, 8, 30, 0, 0, time.UTC)
		evening := time.Date(2024, time.September, 10, 19, 45, 12, 0, time.UTC)
		assert.Equal(t,
			EventKey("Varsity Soccer", models.KindGame, morning),
			EventKey("Varsity Soccer", models.KindGame, evening),
		)
	})

	t.Run("Differs By Team", func(t *testing.T) {
		assert.NotEqual(t,
			EventKey("Varsity Soccer", models.KindGame, day),
			EventKey("JV Soccer", models.KindGame, day),
		)
	})

	t.Run("Differs By Kind", func(t *testing.T) {
		assert.NotEqual(t,
			EventKey("Varsity Soccer", models.KindGame, day),
			EventKey("Varsity Soccer", models.KindPractice, day),
		)
	})

	t.Run("Differs By Day", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		assert.NotEqual(t,
			EventKey("Varsity Soccer", models.KindGame, day),
			EventKey("Varsity Soccer", models.KindGame, nextDay),
		)
	})
}
