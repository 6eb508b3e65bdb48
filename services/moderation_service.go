package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"gorm.io/gorm"
)

type ModerationService struct {
	db *gorm.DB
	rt *RealtimeHub
}

func NewModerationService(db *gorm.DB, rt *RealtimeHub) *ModerationService {
	return &ModerationService{db: db, rt: rt}
}

func (s *ModerationService) List(status, search string, limit, offset int) ([]models.UnapprovedItem, int64, error) {
	if status == "" {
		status = models.ItemStatusPending
	}
	if limit <= 0 {
		limit = 50
	}
	q := s.db.Model(&models.UnapprovedItem{}).Where("status = ?", status)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR barcode = ?", like, like, search)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.UnapprovedItem
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (s *ModerationService) Get(id uint) (*models.UnapprovedItem, error) {
	var item models.UnapprovedItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Submit records a subscriber-submitted item, uploads its photo (if any)
// and runs Rekognition screening so reviewers see flagged content first.
func (s *ModerationService) Submit(item *models.UnapprovedItem, imageBase64 string) (*models.UnapprovedItem, error) {
	if item.Name == "" {
		return nil, errors.New("item name is required")
	}
	item.Status = models.ItemStatusPending

	if imageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(imageBase64, "unapproved-items")
		if err != nil {
			return nil, fmt.Errorf("failed to upload item image: %w", err)
		}
		item.ImageURL = url

		labels, flagged, err := screenImage(imageBase64)
		if err == nil {
			item.ScreenLabels = strings.Join(labels, ",")
			item.ScreenFlagged = flagged
		}
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	s.broadcastQueueEvent("moderation.submitted", item)
	return item, nil
}

// Approve promotes a pending item into the food catalog (per-100g fields
// copied as-is) and notifies the submitting subscriber.
func (s *ModerationService) Approve(id, adminID uint) (*models.Food, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemStatusPending {
		return nil, errors.New("item already reviewed")
	}

	food := &models.Food{
		Name:          item.Name,
		Brand:         item.Brand,
		Barcode:       item.Barcode,
		ImageURL:      item.ImageURL,
		TotalCalories: item.TotalCalories,
		Proteins:      item.Proteins,
		Carbohydrates: item.Carbohydrates,
		Fat:           item.Fat,
		Fibre:         item.Fibre,
		Sugars:        item.Sugars,
		SourceItemID:  item.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		item.Status = models.ItemStatusApproved
		item.ReviewedBy = adminID
		item.ReviewedAt = time.Now()
		return tx.Save(item).Error
	})
	if err != nil {
		return nil, err
	}

	s.broadcastQueueEvent("moderation.approved", item)
	if item.SubscriberID != 0 {
		EmitNotice(item.SubscriberID, adminID, "Food approved",
			fmt.Sprintf("Your submitted food %q is now in the catalog.", item.Name), "push")
	}
	return food, nil
}

func (s *ModerationService) Reject(id, adminID uint, reason string) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if item.Status != models.ItemStatusPending {
		return errors.New("item already reviewed")
	}

	item.Status = models.ItemStatusRejected
	item.ReviewedBy = adminID
	item.ReviewedAt = time.Now()
	item.RejectReason = reason
	if err := s.db.Save(item).Error; err != nil {
		return err
	}

	s.broadcastQueueEvent("moderation.rejected", item)
	if item.SubscriberID != 0 {
		body := fmt.Sprintf("Your submitted food %q was not approved.", item.Name)
		if reason != "" {
			body += " Reason: " + reason
		}
		EmitNotice(item.SubscriberID, adminID, "Food rejected", body, "push")
	}
	return nil
}

func (s *ModerationService) broadcastQueueEvent(kind string, item *models.UnapprovedItem) {
	if s.rt == nil {
		return
	}
	s.rt.BroadcastEvent(map[string]any{"kind": kind, "item": item})
}

// screenImage runs Rekognition moderation labels over the raw image bytes.
// Returns the detected label names and whether anything was flagged.
func screenImage(base64Data string) ([]string, bool, error) {
	parts := strings.Split(base64Data, ",")
	data := parts[len(parts)-1]
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	out, err := utils.RekClient().DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: raw},
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, false, err
	}

	labels := make([]string, 0, len(out.ModerationLabels))
	for _, l := range out.ModerationLabels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, len(labels) > 0, nil
}
