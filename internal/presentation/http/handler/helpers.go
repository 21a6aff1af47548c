package handler

import (
	"encoding/csv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/report"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// writeCSV streams a CSV document as a file download
func writeCSV(c *gin.Context, filename string, doc report.CSVDoc) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(doc.Headers); err != nil {
		return
	}
	for _, row := range doc.Rows {
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}

// parseDate parses a YYYY-MM-DD query value; returns nil when empty or invalid
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
