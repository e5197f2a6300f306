package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sionlog-blog-service/internal/model"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range []model.Category{
		model.CategoryDaily,
		model.CategoryGame,
		model.CategoryHobby,
		model.CategoryProject,
	} {
		assert.NoError(t, c.IsValid())
	}

	assert.Error(t, model.Category("Music").IsValid())
	assert.Error(t, model.Category("").IsValid())
	assert.Error(t, model.Category("daily").IsValid(), "category comparison is case sensitive")
}

func TestCategory_UnmarshalText(t *testing.T) {
	var c model.Category
	assert.NoError(t, c.UnmarshalText([]byte("Hobby")))
	assert.Equal(t, model.CategoryHobby, c)

	assert.Error(t, c.UnmarshalText([]byte("Music")))
	assert.Equal(t, model.CategoryHobby, c, "failed unmarshal leaves the value untouched")
}
