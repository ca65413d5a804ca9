package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"civiclink-be/config"
	"civiclink-be/models"
	authUtils "civiclink-be/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthCheck reports liveness of the auth routes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Auth route up and running"})
}

// SignUp registers a new account. The email domain decides the account kind:
// @mla.com creates an MLA, @org.com an Organization, anything else a Citizen.
func SignUp(c *gin.Context) {
	// Presence is the only gate here; the email field is a classification key,
	// not a validated address, and any non-empty password is accepted.
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	db := config.DB()

	if strings.HasSuffix(input.Email, "@mla.com") {
		var existing models.MLA
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "MLA already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error checking existing MLA:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		newMLA := models.MLA{Name: input.Name, Email: input.Email}
		if err := db.Create(&newMLA).Error; err != nil {
			log.Println("Error creating MLA:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "MLA registered successfully",
			"userType": "MLA",
			"data":     newMLA,
		})
		return
	}

	if strings.HasSuffix(input.Email, "@org.com") {
		var existing models.Organization
		err := db.Where("contact_email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Organization already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error checking existing organization:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		newOrg := models.Organization{
			Name:         input.Name,
			Category:     "General",
			ContactEmail: input.Email,
		}
		if err := db.Create(&newOrg).Error; err != nil {
			log.Println("Error creating organization:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Organization registered successfully",
			"userType": "Organization",
			"data":     newOrg,
		})
		return
	}

	// Default: Citizen
	var existing models.Citizen
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Citizen already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error checking existing citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	citizen := models.Citizen{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := citizen.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := db.Create(&citizen).Error; err != nil {
		log.Println("Error creating citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Citizen registered successfully",
		"userType": "Citizen",
		"data": gin.H{
			"id":    citizen.ID,
			"name":  citizen.Name,
			"email": citizen.Email,
		},
	})
}

// Login authenticates a citizen and additively links every MLA and
// organization sharing the supplied constituency. Links are never pruned, so
// repeated logins from different constituencies accumulate.
func Login(c *gin.Context) {
	var input struct {
		Email        string `json:"email" binding:"required"`
		Password     string `json:"password" binding:"required"`
		Constituency string `json:"constituency"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	db := config.DB()

	var citizen models.Citizen
	err := db.Where("email = ?", input.Email).First(&citizen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Citizen not found"})
		return
	}
	if err != nil {
		log.Println("Error loading citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if !citizen.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	// Linkage only runs when the client names a constituency; an empty value
	// would otherwise match records whose constituency was never set.
	var mlas []models.MLA
	var orgs []models.Organization
	if input.Constituency != "" {
		if err := db.Where("constituency = ?", input.Constituency).Find(&mlas).Error; err != nil {
			log.Println("Error loading MLAs:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if err := db.Where("constituency = ?", input.Constituency).Find(&orgs).Error; err != nil {
			log.Println("Error loading organizations:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		if len(mlas) > 0 {
			if err := db.Model(&citizen).Association("LinkedMLAs").Append(&mlas); err != nil {
				log.Println("Error linking MLAs:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
		}
		if len(orgs) > 0 {
			if err := db.Model(&citizen).Association("LinkedOrganizations").Append(&orgs); err != nil {
				log.Println("Error linking organizations:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
		}

		// The stored constituency is what the details aggregation reads later,
		// and login is the only writer.
		if input.Constituency != citizen.Constituency {
			if err := db.Model(&citizen).Update("constituency", input.Constituency).Error; err != nil {
				log.Println("Error updating constituency:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				return
			}
		}
	}

	token, err := authUtils.GenerateToken(citizen.ID, citizen.Email)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	mlaNames := make([]string, 0, len(mlas))
	for _, mla := range mlas {
		mlaNames = append(mlaNames, mla.Name)
	}
	orgNames := make([]string, 0, len(orgs))
	for _, org := range orgs {
		orgNames = append(orgNames, org.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"citizen": gin.H{
			"id":                   citizen.ID,
			"email":                citizen.Email,
			"constituency":         input.Constituency,
			"linked_MLAs":          mlaNames,
			"linked_Organizations": orgNames,
		},
	})
}

// GetMe returns the profile of the authenticated citizen.
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// JWT numeric claims decode as float64
	idF, ok := userID.(float64)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var citizen models.Citizen
	err := config.DB().First(&citizen, uint(idF)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Citizen not found"})
		return
	}
	if err != nil {
		log.Println("Error loading citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           citizen.ID,
		"name":         citizen.Name,
		"email":        citizen.Email,
		"constituency": citizen.Constituency,
		"createdAt":    citizen.CreatedAt,
	})
}
