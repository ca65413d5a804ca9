package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"civiclink-be/config"
	"civiclink-be/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandleSupportIssue toggles a citizen's support for an issue: support if not
// yet supported, withdraw it otherwise.
func HandleSupportIssue(c *gin.Context) {
	issueID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid issue ID"})
		return
	}

	var input struct {
		CitizenID *uint `json:"citizenId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.CitizenID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "citizenId is required"})
		return
	}

	db := config.DB()

	var issue models.Issue
	err = db.First(&issue, uint(issueID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Issue not found"})
		return
	}
	if err != nil {
		log.Println("Error loading issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var citizen models.Citizen
	err = db.First(&citizen, *input.CitizenID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid citizenId - Citizen not found"})
		return
	}
	if err != nil {
		log.Println("Error checking citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var existing models.Support
	err = db.Where("issue_id = ? AND citizen_id = ?", issue.ID, citizen.ID).First(&existing).Error
	switch {
	case err == nil:
		// Already supported, withdraw
		if err := db.Delete(&existing).Error; err != nil {
			log.Println("Error withdrawing support:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		var count int64
		if err := db.Model(&models.Support{}).Where("issue_id = ?", issue.ID).Count(&count).Error; err != nil {
			count = 0
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Support withdrawn successfully",
			"supported": false,
			"supports":  count,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		support := models.Support{IssueID: issue.ID, CitizenID: citizen.ID}
		if err := db.Create(&support).Error; err != nil {
			log.Println("Error recording support:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		var count int64
		if err := db.Model(&models.Support{}).Where("issue_id = ?", issue.ID).Count(&count).Error; err != nil {
			count = 1
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Support recorded successfully",
			"supported": true,
			"supports":  count,
		})
	default:
		log.Println("Error checking existing support:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
