package controllers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"civiclink-be/config"
	"civiclink-be/models"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard ranks MLAs by how many of their assigned issues are resolved.
// An optional status query narrows the board to MLAs with at least one issue
// in that state; the filter runs after the ranking so positions are stable.
func GetLeaderboard(c *gin.Context) {
	db := config.DB()

	var issues []models.Issue
	err := db.
		Preload("MLA").
		Where("mla_id IS NOT NULL").
		Find(&issues).Error
	if err != nil {
		log.Println("Error loading issues for leaderboard:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	type entry struct {
		MLAID        uint    `json:"mlaId"`
		Name         string  `json:"name"`
		Party        string  `json:"party"`
		Constituency string  `json:"constituency"`
		Rating       float64 `json:"rating"`
		Resolved     int     `json:"resolved"`
		InProgress   int     `json:"inProgress"`
		Pending      int     `json:"pending"`
		Rejected     int     `json:"rejected"`
		Total        int     `json:"total"`
	}

	groups := make(map[uint]*entry)
	statusCount := make(map[uint]map[models.IssueStatus]int)
	for _, issue := range issues {
		if issue.MLAID == nil {
			continue
		}
		id := *issue.MLAID
		e, ok := groups[id]
		if !ok {
			e = &entry{MLAID: id}
			if issue.MLA != nil {
				e.Name = issue.MLA.Name
				e.Party = issue.MLA.Party
				e.Constituency = issue.MLA.Constituency
				e.Rating = issue.MLA.Rating
			}
			groups[id] = e
			statusCount[id] = make(map[models.IssueStatus]int)
		}
		statusCount[id][issue.Status]++
		switch issue.Status {
		case models.StatusResolved:
			e.Resolved++
		case models.StatusInProgress:
			e.InProgress++
		case models.StatusPending:
			e.Pending++
		case models.StatusRejected:
			e.Rejected++
		}
		e.Total++
	}

	board := make([]*entry, 0, len(groups))
	for _, e := range groups {
		board = append(board, e)
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Resolved != board[j].Resolved {
			return board[i].Resolved > board[j].Resolved
		}
		return board[i].Total > board[j].Total
	})

	// Status filter runs after the sort
	if status := c.Query("status"); status != "" && models.ValidStatus(status) {
		filtered := board[:0]
		for _, e := range board {
			if statusCount[e.MLAID][models.IssueStatus(status)] > 0 {
				filtered = append(filtered, e)
			}
		}
		board = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(board),
		"leaderboard": board,
	})
}

// GetIssueAnalytics returns dashboard data: counts by category and status, the
// last-7-days submission series, and the most supported recent issues.
func GetIssueAnalytics(c *gin.Context) {
	db := config.DB()

	var issuesByCategory []struct {
		Name  string `json:"name"`
		Value int64  `json:"value"`
	}
	err := db.Model(&models.Issue{}).
		Select("category AS name, COUNT(*) AS value").
		Group("category").
		Scan(&issuesByCategory).Error
	if err != nil {
		log.Println("Error grouping issues by category:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	statusCounts := gin.H{}
	for _, status := range []models.IssueStatus{
		models.StatusPending, models.StatusInProgress,
		models.StatusResolved, models.StatusRejected,
	} {
		var count int64
		if err := db.Model(&models.Issue{}).Where("status = ?", status).Count(&count).Error; err != nil {
			count = 0
		}
		statusCounts[string(status)] = count
	}

	// Last 7 days of submissions
	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		var count int64
		err := db.Model(&models.Issue{}).
			Where("created_at >= ? AND created_at < ?", date, nextDate).
			Count(&count).Error
		if err != nil {
			count = 0
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	// Most supported among the 50 most recent issues
	var recent []models.Issue
	err = db.Order("created_at DESC").Limit(50).Find(&recent).Error
	if err != nil {
		log.Println("Error loading recent issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	type supportedIssue struct {
		ID       uint   `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Supports int64  `json:"supports"`
	}

	supportCounts := make(map[uint]int64)
	if len(recent) > 0 {
		ids := make([]uint, 0, len(recent))
		for _, issue := range recent {
			ids = append(ids, issue.ID)
		}

		var rows []struct {
			IssueID uint
			Count   int64
		}
		err := db.Model(&models.Support{}).
			Select("issue_id, COUNT(*) AS count").
			Where("issue_id IN ?", ids).
			Group("issue_id").
			Scan(&rows).Error
		if err != nil {
			log.Println("Error counting supports:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		for _, row := range rows {
			supportCounts[row.IssueID] = row.Count
		}
	}

	var topSupported []supportedIssue
	for _, issue := range recent {
		topSupported = append(topSupported, supportedIssue{
			ID:       issue.ID,
			Title:    issue.Title,
			Category: issue.Category,
			Supports: supportCounts[issue.ID],
		})
	}

	sort.Slice(topSupported, func(i, j int) bool {
		return topSupported[i].Supports > topSupported[j].Supports
	})
	if len(topSupported) > 5 {
		topSupported = topSupported[:5]
	}

	var totalIssues, totalSupports, openIssues int64
	if err := db.Model(&models.Issue{}).Count(&totalIssues).Error; err != nil {
		totalIssues = 0
	}
	if err := db.Model(&models.Support{}).Count(&totalSupports).Error; err != nil {
		totalSupports = 0
	}
	err = db.Model(&models.Issue{}).
		Where("status IN ?", []models.IssueStatus{models.StatusPending, models.StatusInProgress}).
		Count(&openIssues).Error
	if err != nil {
		openIssues = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory":   issuesByCategory,
		"statusCounts":       statusCounts,
		"last7Days":          last7Days,
		"topSupportedIssues": topSupported,
		"totalIssues":        totalIssues,
		"totalSupports":      totalSupports,
		"openIssues":         openIssues,
	})
}

// RecentIssues returns the newest geotagged issues for the map view.
func RecentIssues(c *gin.Context) {
	db := config.DB()
	limit := 19

	var issues []models.Issue
	err := db.
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("created_at DESC").
		Limit(limit).
		Find(&issues).Error
	if err != nil {
		log.Println("Error loading recent issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	type issueResponse struct {
		ID        uint      `json:"id"`
		Title     string    `json:"title"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Location  string    `json:"location"`
		Category  string    `json:"category,omitempty"`
		CreatedAt time.Time `json:"createdAt,omitempty"`
	}

	response := make([]issueResponse, 0, len(issues))
	for _, issue := range issues {
		if issue.Latitude != nil && issue.Longitude != nil {
			response = append(response, issueResponse{
				ID:        issue.ID,
				Title:     issue.Title,
				Latitude:  *issue.Latitude,
				Longitude: *issue.Longitude,
				Location:  issue.Location,
				Category:  issue.Category,
				CreatedAt: issue.CreatedAt,
			})
		}
	}

	c.JSON(http.StatusOK, response)
}
