package services

import (
	"errors"
	"strings"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"gorm.io/gorm"
)

type SubscriberInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
	Plan     string `json:"plan"`
	Expires  string `json:"expires_at"` // YYYY-MM-DD
}

func ListSubscribers(search string, limit, offset int) ([]models.Subscriber, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	q := config.DB.Model(&models.Subscriber{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ? OR phone LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var subs []models.Subscriber
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	return subs, total, err
}

func GetSubscriber(id uint) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := config.DB.First(&sub, id).Error; err != nil {
		return nil, errors.New("subscriber not found")
	}
	return &sub, nil
}

func UpdateSubscriber(id uint, input SubscriberInput) (*models.Subscriber, error) {
	sub, err := GetSubscriber(id)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		sub.FullName = input.FullName
	}
	if input.Phone != "" {
		sub.Phone = input.Phone
	}
	if input.Language != "" {
		sub.Language = input.Language
	}
	if input.Plan != "" {
		sub.Plan = input.Plan
	}
	if input.Expires != "" {
		if exp, err := time.Parse("2006-01-02", input.Expires); err == nil {
			sub.ExpiresAt = exp
		}
	}

	if err := config.DB.Save(sub).Error; err != nil {
		return nil, err
	}
	InvalidateCachedPrefix(CacheKey("diary", sub.ID))
	return sub, nil
}

func SetSubscriberDisabled(id uint, disabled bool) error {
	sub, err := GetSubscriber(id)
	if err != nil {
		return err
	}
	sub.Disabled = disabled
	return config.DB.Save(sub).Error
}

func GetNutritionGoal(subscriberID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("subscriber_id = ?", subscriberID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NutritionGoal{SubscriberID: subscriberID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

// UpsertNutritionGoal replaces the subscriber's daily targets. Zero keeps
// the category unscored, matching the engine's "no goal set" semantics.
func UpsertNutritionGoal(subscriberID uint, thresholds utils.GoalThresholds) (*models.NutritionGoal, error) {
	if _, err := GetSubscriber(subscriberID); err != nil {
		return nil, err
	}

	var goal models.NutritionGoal
	err := config.DB.Where("subscriber_id = ?", subscriberID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutritionGoal{SubscriberID: subscriberID}
	} else if err != nil {
		return nil, err
	}

	goal.Calories = thresholds.Calories
	goal.Protein = thresholds.Protein
	goal.Carbs = thresholds.Carbs
	goal.Fat = thresholds.Fat

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	InvalidateCachedPrefix(CacheKey("diary", subscriberID))
	return &goal, nil
}
