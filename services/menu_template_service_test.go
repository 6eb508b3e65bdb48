package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuTemplateValidate(t *testing.T) {
	svc := NewMenuTemplateService(nil)

	valid := MenuTemplateInput{
		Name: "Cut week",
		Days: 7,
		Items: []MenuTemplateItemInput{
			{Day: 1, Meal: "breakfast", RecipeID: 3},
			{Day: 7, Meal: "snack", RecipeID: 4, Position: 1},
		},
	}
	assert.NoError(t, svc.validate(valid))

	missing := valid
	missing.Name = ""
	assert.Error(t, svc.validate(missing))

	badDay := valid
	badDay.Items = []MenuTemplateItemInput{{Day: 8, Meal: "lunch", RecipeID: 3}}
	err := svc.validate(badDay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	badMeal := valid
	badMeal.Items = []MenuTemplateItemInput{{Day: 1, Meal: "brunch", RecipeID: 3}}
	err = svc.validate(badMeal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown meal")

	noRecipe := valid
	noRecipe.Items = []MenuTemplateItemInput{{Day: 1, Meal: "dinner"}}
	assert.Error(t, svc.validate(noRecipe))
}

func TestMenuTemplateValidateDefaultsDays(t *testing.T) {
	svc := NewMenuTemplateService(nil)

	// Days unset defaults to a 7-day template.
	input := MenuTemplateInput{
		Name:  "Default length",
		Items: []MenuTemplateItemInput{{Day: 7, Meal: "dinner", RecipeID: 1}},
	}
	assert.NoError(t, svc.validate(input))

	input.Items[0].Day = 8
	assert.Error(t, svc.validate(input))
}
