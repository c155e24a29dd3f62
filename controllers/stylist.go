// controllers/stylist.go
package controllers

import (
	"errors"
	"net/http"

	"bookacut-backend/config"
	"bookacut-backend/models"
	"bookacut-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStylistInput struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
}

type UpdateStylistInput struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Specialty *string `json:"specialty"`
	IsActive  *bool   `json:"isActive"`
}

// StylistProfileInput is what a stylist may edit on their own profile
type StylistProfileInput struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
}

// GetStylists lists every stylist, inactive ones included
func GetStylists(c *gin.Context) {
	var stylists []models.Stylist
	if err := config.DB.Order("name").Find(&stylists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stylists")
		return
	}

	c.JSON(http.StatusOK, stylists)
}

// CreateStylist adds a stylist to the roster
func CreateStylist(c *gin.Context) {
	var input CreateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	stylist := models.Stylist{
		Name:      input.Name,
		Bio:       input.Bio,
		Specialty: input.Specialty,
		IsActive:  true,
	}

	if err := config.DB.Create(&stylist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create stylist")
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

// UpdateStylist updates an existing stylist
func UpdateStylist(c *gin.Context) {
	stylistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		return
	}

	var input UpdateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var stylist models.Stylist
	if err := config.DB.Where("id = ?", stylistUUID).First(&stylist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		stylist.Name = *input.Name
	}
	if input.Bio != nil {
		stylist.Bio = *input.Bio
	}
	if input.Specialty != nil {
		stylist.Specialty = *input.Specialty
	}
	if input.IsActive != nil {
		stylist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&stylist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update stylist")
		return
	}

	c.JSON(http.StatusOK, stylist)
}

// GetMyProfile returns the stylist profile linked to the logged-in account
func GetMyProfile(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := config.DB.Where("user_id = ?", userUUID).First(&stylist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No stylist profile yet")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, stylist)
}

// UpsertMyProfile creates the logged-in stylist's profile on first save and
// updates it afterwards.
func UpsertMyProfile(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input StylistProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var stylist models.Stylist
	err := config.DB.Where("user_id = ?", userUUID).First(&stylist).Error
	switch {
	case err == nil:
		stylist.Name = input.Name
		stylist.Bio = input.Bio
		stylist.Specialty = input.Specialty
		if err := config.DB.Save(&stylist).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		c.JSON(http.StatusOK, stylist)
	case errors.Is(err, gorm.ErrRecordNotFound):
		stylist = models.Stylist{
			Name:      input.Name,
			Bio:       input.Bio,
			Specialty: input.Specialty,
			IsActive:  true,
			UserID:    &userUUID,
		}
		if err := config.DB.Create(&stylist).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create profile")
			return
		}
		c.JSON(http.StatusCreated, stylist)
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	raw, _ := userID.(string)
	userUUID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}
