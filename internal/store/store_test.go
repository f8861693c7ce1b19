package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/models"
)

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	db, err := Open(context.Background(), "", ":memory:")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestOpen_NoTarget(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "", "")
	require.Error(t, err)
}

func TestReplace_DropsAndRecreates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(ctx, "", ":memory:")
	require.NoError(t, err)

	first := []models.Product{
		{ID: 1, Name: "Toaster", Category: "Home", Price: 39.99},
		{ID: 2, Name: "Blender", Category: "Home", Price: 59.99},
	}
	require.NoError(t, Replace(ctx, db, "products", &models.Product{}, first))

	second := []models.Product{
		{ID: 1, Name: "Yoga Mat", Category: "Fitness", Price: 25.50},
	}
	require.NoError(t, Replace(ctx, db, "products", &models.Product{}, second))

	var n int64
	require.NoError(t, db.Table("products").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	var name string
	require.NoError(t, db.Table("products").Where("id = ?", 1).Select("name").Scan(&name).Error)
	assert.Equal(t, "Yoga Mat", name)
}

func TestReplace_EmptyRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(ctx, "", ":memory:")
	require.NoError(t, err)

	require.NoError(t, Replace(ctx, db, "products", &models.Product{}, []models.Product{}))
	assert.True(t, db.Migrator().HasTable("products"))
}
