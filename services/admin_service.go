package services

import (
	"errors"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"
)

func RegisterAdmin(email, password, fullName, role string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if role == "" {
		role = "editor"
	}

	admin := models.AdminUser{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Role:     role,
	}
	return config.DB.Create(&admin).Error
}

func FindAdminByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&admin)
	if result.Error != nil {
		return nil, errors.New("admin not found or disabled")
	}
	return &admin, nil
}

func AuthenticateAdmin(email, password string) (string, error) {
	admin, err := FindAdminByEmail(email)
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return "", errors.New("incorrect password")
	}
	return utils.GenerateJWT(admin.ID, admin.Email)
}
