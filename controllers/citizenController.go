package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"civiclink-be/config"
	"civiclink-be/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FlexFloat accepts a JSON number or a numeric string. Browser clients send
// coordinates both ways.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func mlaSummary(mla *models.MLA) gin.H {
	if mla == nil {
		return nil
	}
	return gin.H{
		"id":    mla.ID,
		"name":  mla.Name,
		"party": mla.Party,
	}
}

func orgSummary(org *models.Organization) gin.H {
	if org == nil {
		return nil
	}
	return gin.H{
		"id":       org.ID,
		"name":     org.Name,
		"category": org.Category,
	}
}

func issueView(issue models.Issue, withCitizen bool) gin.H {
	view := gin.H{
		"id":           issue.ID,
		"title":        issue.Title,
		"description":  issue.Description,
		"category":     issue.Category,
		"mediaUrl":     issue.MediaURL,
		"location":     issue.Location,
		"latitude":     issue.Latitude,
		"longitude":    issue.Longitude,
		"status":       issue.Status,
		"severity":     issue.Severity,
		"createdAt":    issue.CreatedAt,
		"updatedAt":    issue.UpdatedAt,
		"mla":          mlaSummary(issue.MLA),
		"organization": orgSummary(issue.Organization),
	}
	if withCitizen {
		view["citizen"] = nil
		if issue.Citizen != nil {
			view["citizen"] = gin.H{
				"id":           issue.Citizen.ID,
				"name":         issue.Citizen.Name,
				"email":        issue.Citizen.Email,
				"constituency": issue.Citizen.Constituency,
			}
		}
	}
	return view
}

// GetCitizenDetails aggregates a citizen with the current MLA (most recently
// created linked MLA), all linked organizations, and all issues newest-first.
func GetCitizenDetails(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	db := config.DB()

	var citizen models.Citizen
	err := db.
		Preload("LinkedMLAs").
		Preload("LinkedOrganizations").
		Preload("Issues", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("issues.created_at DESC")
		}).
		Preload("Issues.MLA").
		Preload("Issues.Organization").
		Where("email = ?", email).
		First(&citizen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Citizen not found"})
		return
	}
	if err != nil {
		log.Println("Error loading citizen details:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Current MLA: newest linked MLA by creation time
	var currentMLA gin.H
	var newest models.MLA
	err = db.
		Joins("JOIN citizen_mlas ON citizen_mlas.mla_id = mlas.id").
		Where("citizen_mlas.citizen_id = ?", citizen.ID).
		Order("mlas.created_at DESC").
		First(&newest).Error
	if err == nil {
		currentMLA = gin.H{
			"id":           newest.ID,
			"name":         newest.Name,
			"party":        newest.Party,
			"email":        newest.Email,
			"phone":        newest.Phone,
			"rating":       newest.Rating,
			"constituency": newest.Constituency,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error loading current MLA:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	linkedMLAs := make([]gin.H, 0, len(citizen.LinkedMLAs))
	for _, mla := range citizen.LinkedMLAs {
		linkedMLAs = append(linkedMLAs, gin.H{
			"id":     mla.ID,
			"name":   mla.Name,
			"party":  mla.Party,
			"email":  mla.Email,
			"phone":  mla.Phone,
			"rating": mla.Rating,
		})
	}

	linkedOrgs := make([]gin.H, 0, len(citizen.LinkedOrganizations))
	for _, org := range citizen.LinkedOrganizations {
		linkedOrgs = append(linkedOrgs, gin.H{
			"id":            org.ID,
			"name":          org.Name,
			"category":      org.Category,
			"contact_email": org.ContactEmail,
			"contact_phone": org.ContactPhone,
			"address":       org.Address,
		})
	}

	issues := make([]gin.H, 0, len(citizen.Issues))
	for _, issue := range citizen.Issues {
		issues = append(issues, issueView(issue, false))
	}

	c.JSON(http.StatusOK, gin.H{
		"citizen": gin.H{
			"id":                   citizen.ID,
			"name":                 citizen.Name,
			"email":                citizen.Email,
			"constituency":         citizen.Constituency,
			"currentMLA":           currentMLA,
			"linked_MLAs":          linkedMLAs,
			"linked_Organizations": linkedOrgs,
			"issues":               issues,
		},
	})
}

// HandleIssue creates a new issue or, when the update flag is set, patches an
// existing one. Create validates every referenced id and forces status to
// PENDING; update touches only status, severity, and coordinates.
func HandleIssue(c *gin.Context) {
	var input struct {
		Update         bool       `json:"update"`
		IssueID        *uint      `json:"issueId"`
		Title          *string    `json:"title"`
		Description    *string    `json:"description"`
		Category       *string    `json:"category"`
		MediaURL       *string    `json:"mediaUrl"`
		Location       *string    `json:"location"`
		CitizenID      *uint      `json:"citizenId"`
		MLAID          *uint      `json:"mlaId"`
		OrganizationID *uint      `json:"organizationId"`
		Status         *string    `json:"status"`
		Severity       *string    `json:"severity"`
		Latitude       *FlexFloat `json:"latitude"`
		Longitude      *FlexFloat `json:"longitude"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	db := config.DB()

	if input.Update {
		updateIssue(c, db, input.IssueID, input.Status, input.Severity, input.Latitude, input.Longitude)
		return
	}

	if input.Title == nil || input.Description == nil || input.Category == nil ||
		input.Location == nil || input.CitizenID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "title, description, category, location, and citizenId are required",
		})
		return
	}

	var citizen models.Citizen
	err := db.First(&citizen, *input.CitizenID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid citizenId - Citizen not found"})
		return
	}
	if err != nil {
		log.Println("Error checking citizen:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if input.MLAID != nil {
		var mla models.MLA
		err := db.First(&mla, *input.MLAID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid mlaId - MLA not found"})
			return
		}
		if err != nil {
			log.Println("Error checking MLA:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	if input.OrganizationID != nil {
		var org models.Organization
		err := db.First(&org, *input.OrganizationID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid organizationId - Organization not found"})
			return
		}
		if err != nil {
			log.Println("Error checking organization:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	severity := models.SeverityLow
	if input.Severity != nil {
		if !models.ValidSeverity(*input.Severity) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid severity"})
			return
		}
		severity = models.IssueSeverity(*input.Severity)
	}

	issue := models.Issue{
		Title:          *input.Title,
		Description:    *input.Description,
		Category:       *input.Category,
		MediaURL:       input.MediaURL,
		Location:       *input.Location,
		Status:         models.StatusPending,
		Severity:       severity,
		CitizenID:      *input.CitizenID,
		MLAID:          input.MLAID,
		OrganizationID: input.OrganizationID,
	}
	if input.Latitude != nil {
		lat := float64(*input.Latitude)
		issue.Latitude = &lat
	}
	if input.Longitude != nil {
		lon := float64(*input.Longitude)
		issue.Longitude = &lon
	}

	if err := db.Create(&issue).Error; err != nil {
		log.Println("Error creating issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Issue created successfully",
		"issue":   issue,
	})
}

func updateIssue(c *gin.Context, db *gorm.DB, issueID *uint, status, severity *string, latitude, longitude *FlexFloat) {
	if issueID == nil || status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "issueId and status are required for update"})
		return
	}

	if !models.ValidStatus(*status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if severity != nil && !models.ValidSeverity(*severity) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid severity"})
		return
	}

	var issue models.Issue
	err := db.First(&issue, *issueID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Issue not found"})
		return
	}
	if err != nil {
		log.Println("Error loading issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	update := map[string]interface{}{"status": *status}
	if severity != nil {
		update["severity"] = *severity
	}
	if latitude != nil {
		update["latitude"] = float64(*latitude)
	}
	if longitude != nil {
		update["longitude"] = float64(*longitude)
	}

	if err := db.Model(&issue).Updates(update).Error; err != nil {
		log.Println("Error updating issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Map-based Updates does not write back into the struct
	if err := db.First(&issue, *issueID).Error; err != nil {
		log.Println("Error reloading issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Issue updated successfully",
		"issue":   issue,
	})
}

// GetAllIssues lists every issue newest-first with citizen, MLA, and
// organization summaries embedded.
func GetAllIssues(c *gin.Context) {
	db := config.DB()

	var issues []models.Issue
	err := db.
		Preload("Citizen").
		Preload("MLA").
		Preload("Organization").
		Order("created_at DESC").
		Find(&issues).Error
	if err != nil {
		log.Println("Error loading issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	views := make([]gin.H, 0, len(issues))
	for _, issue := range issues {
		views = append(views, issueView(issue, true))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(views),
		"issues":  views,
	})
}
