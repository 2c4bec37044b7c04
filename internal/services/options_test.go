package services

import (
	"testing"
	"time"

	"github.com/manideepv28/TravelCompanion/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestSavedOptionService(t *testing.T) {
	db := setupTestDB()
	service := NewSavedOptionService(db)

	data := datatypes.JSON([]byte(`{"airline":"TestAir","price":420}`))

	t.Run("Save and List", func(t *testing.T) {
		saved, err := service.Save(1, "flight1", "flight", data)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), saved.UserID)
		assert.Equal(t, "flight1", saved.OptionID)

		options, err := service.List(1)
		assert.NoError(t, err)
		assert.Len(t, options, 1)
	})

	t.Run("Repeated save upserts instead of duplicating", func(t *testing.T) {
		refreshed := datatypes.JSON([]byte(`{"airline":"TestAir","price":380}`))
		saved, err := service.Save(1, "flight1", "flight", refreshed)
		assert.NoError(t, err)
		assert.Contains(t, string(saved.OptionData), "380")

		options, _ := service.List(1)
		assert.Len(t, options, 1)

		var count int64
		db.Model(&models.SavedOption{}).Where("user_id = ? AND option_id = ?", 1, "flight1").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("IsSaved is scoped to the caller", func(t *testing.T) {
		saved, err := service.IsSaved(1, "flight1")
		assert.NoError(t, err)
		assert.True(t, saved)

		otherUser, err := service.IsSaved(2, "flight1")
		assert.NoError(t, err)
		assert.False(t, otherUser)
	})

	t.Run("List never leaks other users' rows", func(t *testing.T) {
		_, err := service.Save(2, "hotel1", "hotel", datatypes.JSON([]byte(`{"name":"Grand"}`)))
		assert.NoError(t, err)

		options, _ := service.List(1)
		for _, o := range options {
			assert.NotEqual(t, "hotel1", o.OptionID)
		}
	})

	t.Run("List newest first", func(t *testing.T) {
		db2 := setupTestDB()
		svc := NewSavedOptionService(db2)

		old := models.SavedOption{UserID: 1, OptionID: "a", OptionType: "flight", OptionData: data,
			CreatedAt: time.Now().Add(-time.Hour)}
		db2.Create(&old)
		_, err := svc.Save(1, "b", "hotel", data)
		assert.NoError(t, err)

		options, err := svc.List(1)
		assert.NoError(t, err)
		assert.Len(t, options, 2)
		assert.Equal(t, "b", options[0].OptionID)
		assert.Equal(t, "a", options[1].OptionID)
	})

	t.Run("Remove is idempotent", func(t *testing.T) {
		assert.NoError(t, service.Remove(1, "flight1"))

		saved, _ := service.IsSaved(1, "flight1")
		assert.False(t, saved)

		// Second remove of a gone row must still succeed
		assert.NoError(t, service.Remove(1, "flight1"))
		assert.NoError(t, service.Remove(1, "never-existed"))
	})

	t.Run("Remove only touches the caller's row", func(t *testing.T) {
		_, err := service.Save(1, "shared", "activity", data)
		assert.NoError(t, err)
		_, err = service.Save(2, "shared", "activity", data)
		assert.NoError(t, err)

		assert.NoError(t, service.Remove(1, "shared"))

		mine, _ := service.IsSaved(1, "shared")
		theirs, _ := service.IsSaved(2, "shared")
		assert.False(t, mine)
		assert.True(t, theirs)
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := setupTestDB()
		dbErr.Migrator().DropTable(&models.SavedOption{})
		svcErr := NewSavedOptionService(dbErr)

		_, err := svcErr.Save(1, "x", "flight", data)
		assert.Error(t, err)
		_, err = svcErr.List(1)
		assert.Error(t, err)
		_, err = svcErr.IsSaved(1, "x")
		assert.Error(t, err)
	})
}
