package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"gorm.io/gorm"
)

type MenuTemplateService struct {
	db *gorm.DB
}

func NewMenuTemplateService(db *gorm.DB) *MenuTemplateService {
	return &MenuTemplateService{db: db}
}

type MenuTemplateItemInput struct {
	Day      int    `json:"day"`
	Meal     string `json:"meal"`
	RecipeID uint   `json:"recipe_id"`
	Position int    `json:"position"`
}

type MenuTemplateInput struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Language    string                  `json:"language"`
	Days        int                     `json:"days"`
	Items       []MenuTemplateItemInput `json:"items"`
}

func (s *MenuTemplateService) List(search string, limit, offset int) ([]models.MenuTemplate, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.db.Model(&models.MenuTemplate{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var templates []models.MenuTemplate
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&templates).Error
	return templates, total, err
}

func (s *MenuTemplateService) Get(id uint) (*models.MenuTemplate, error) {
	var tpl models.MenuTemplate
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC, position ASC")
	}).Preload("Items.Recipe").First(&tpl, id).Error
	if err != nil {
		return nil, errors.New("menu template not found")
	}
	return &tpl, nil
}

func (s *MenuTemplateService) Create(input MenuTemplateInput) (*models.MenuTemplate, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	tpl := &models.MenuTemplate{
		Name:        input.Name,
		Description: input.Description,
		Language:    input.Language,
		Days:        input.Days,
	}
	if tpl.Days <= 0 {
		tpl.Days = 7
	}
	for _, it := range input.Items {
		tpl.Items = append(tpl.Items, models.MenuTemplateItem{
			Day:      it.Day,
			Meal:     it.Meal,
			RecipeID: it.RecipeID,
			Position: it.Position,
		})
	}
	if err := s.db.Create(tpl).Error; err != nil {
		return nil, err
	}
	return s.Get(tpl.ID)
}

func (s *MenuTemplateService) Update(id uint, input MenuTemplateInput) (*models.MenuTemplate, error) {
	tpl, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_template_id = ?", tpl.ID).Delete(&models.MenuTemplateItem{}).Error; err != nil {
			return err
		}
		tpl.Name = input.Name
		tpl.Description = input.Description
		if input.Language != "" {
			tpl.Language = input.Language
		}
		if input.Days > 0 {
			tpl.Days = input.Days
		}
		tpl.Items = nil
		for _, it := range input.Items {
			tpl.Items = append(tpl.Items, models.MenuTemplateItem{
				Day:      it.Day,
				Meal:     it.Meal,
				RecipeID: it.RecipeID,
				Position: it.Position,
			})
		}
		return tx.Save(tpl).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MenuTemplateService) SetPublished(id uint, published bool) error {
	tpl, err := s.Get(id)
	if err != nil {
		return err
	}
	tpl.Published = published
	return s.db.Model(&models.MenuTemplate{}).Where("id = ?", id).Update("published", published).Error
}

func (s *MenuTemplateService) Delete(id uint) error {
	if err := s.db.Where("menu_template_id = ?", id).Delete(&models.MenuTemplateItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.MenuTemplate{}, id).Error
}

func (s *MenuTemplateService) validate(input MenuTemplateInput) error {
	if input.Name == "" {
		return errors.New("template name is required")
	}
	days := input.Days
	if days <= 0 {
		days = 7
	}
	for _, it := range input.Items {
		if it.Day < 1 || it.Day > days {
			return fmt.Errorf("item day %d out of range 1..%d", it.Day, days)
		}
		if !validMeal(it.Meal) {
			return fmt.Errorf("unknown meal %q", it.Meal)
		}
		if it.RecipeID == 0 {
			return errors.New("item recipe_id is required")
		}
	}
	return nil
}

func validMeal(meal string) bool {
	for _, m := range utils.MealOrder {
		if m == meal {
			return true
		}
	}
	return false
}
