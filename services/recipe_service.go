package services

import (
	"errors"
	"strings"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeServingInput struct {
	ProfileID int     `json:"profile_id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
}

type RecipeInput struct {
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Language           string               `json:"language"`
	NumberOfServings   float64              `json:"number_of_servings"`
	TotalQuantity      float64              `json:"total_quantity"`
	WeightAfterCooking float64              `json:"weight_after_cooking"`
	TotalCalories      float64              `json:"total_calories"`
	Proteins           float64              `json:"proteins"`
	Carbohydrates      float64              `json:"carbohydrates"`
	Fat                float64              `json:"fat"`
	Fibre              float64              `json:"fibre"`
	Sugars             float64              `json:"sugars"`
	Approved           bool                 `json:"approved"`
	Servings           []RecipeServingInput `json:"servings"`
}

func (s *RecipeService) List(search string, limit, offset int) ([]models.Recipe, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.db.Model(&models.Recipe{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var recipes []models.Recipe
	err := q.Preload("Servings").Order("name ASC").Limit(limit).Offset(offset).Find(&recipes).Error
	return recipes, total, err
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Servings").First(&recipe, id).Error; err != nil {
		return nil, errors.New("recipe not found")
	}
	return &recipe, nil
}

func (s *RecipeService) Create(input RecipeInput) (*models.Recipe, error) {
	if input.Name == "" {
		return nil, errors.New("recipe name is required")
	}
	recipe := &models.Recipe{}
	applyRecipeInput(recipe, input)

	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Update(id uint, input RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeServing{}).Error; err != nil {
			return err
		}
		recipe.Servings = nil
		applyRecipeInput(recipe, input)
		return tx.Save(recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *RecipeService) Delete(id uint) error {
	if err := s.db.Where("recipe_id = ?", id).Delete(&models.RecipeServing{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Recipe{}, id).Error
}

// SetImage uploads a base64 image and stores its public URL on the recipe.
func (s *RecipeService) SetImage(id uint, imageBase64 string) (*models.Recipe, error) {
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	url, err := utils.UploadBase64ImageToS3(imageBase64, "recipes")
	if err != nil {
		return nil, err
	}
	recipe.ImageURL = url
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func applyRecipeInput(recipe *models.Recipe, input RecipeInput) {
	if input.Name != "" {
		recipe.Name = input.Name
	}
	recipe.Description = input.Description
	if input.Language != "" {
		recipe.Language = input.Language
	}
	recipe.NumberOfServings = input.NumberOfServings
	if recipe.NumberOfServings <= 0 {
		recipe.NumberOfServings = 1
	}
	recipe.TotalQuantity = input.TotalQuantity
	recipe.WeightAfterCooking = input.WeightAfterCooking
	recipe.TotalCalories = input.TotalCalories
	recipe.Proteins = input.Proteins
	recipe.Carbohydrates = input.Carbohydrates
	recipe.Fat = input.Fat
	recipe.Fibre = input.Fibre
	recipe.Sugars = input.Sugars
	recipe.Approved = input.Approved
	for _, sv := range input.Servings {
		recipe.Servings = append(recipe.Servings, models.RecipeServing{
			ProfileID: sv.ProfileID,
			Name:      sv.Name,
			Amount:    sv.Amount,
		})
	}
}
