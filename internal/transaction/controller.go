package transaction

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	service ServiceInterface
}

func NewController(service ServiceInterface) *Controller {
	return &Controller{service: service}
}

// Create handles adding a transaction.
func (tc *Controller) Create(c *gin.Context) {
	var req struct {
		UserID      string     `json:"userId"`
		Amount      float64    `json:"amount"`
		Description string     `json:"description"`
		Date        *time.Time `json:"date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error adding transaction")
		c.String(http.StatusInternalServerError, "Error adding transaction")
		return
	}

	tx, err := tc.service.Add(c.Request.Context(), AddInput{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		logrus.WithError(err).Error("Error adding transaction")
		c.String(http.StatusInternalServerError, "Error adding transaction")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ListByUser handles listing a user's most recent transactions.
func (tc *Controller) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	txs, err := tc.service.ListRecent(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Error fetching transactions")
		c.String(http.StatusInternalServerError, "Error fetching transactions")
		return
	}

	c.JSON(http.StatusOK, txs)
}

// Delete handles deleting a transaction by id.
func (tc *Controller) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := tc.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Transaction not found",
			})
			return
		}
		logrus.WithError(err).Error("Error deleting transaction")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting transaction",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transaction deleted",
	})
}

// Search handles the by-day search.
func (tc *Controller) Search(c *gin.Context) {
	userID := c.Param("userId")
	date := c.Query("date")

	txs, err := tc.service.SearchByDay(c.Request.Context(), userID, date)
	if err != nil {
		logrus.WithError(err).Error("Error searching transactions")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error searching transactions",
		})
		return
	}

	c.JSON(http.StatusOK, txs)
}

// Report handles the monthly income/expense report.
func (tc *Controller) Report(c *gin.Context) {
	userID := c.Param("userId")

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		logrus.WithError(err).Error("Error generating report")
		c.String(http.StatusInternalServerError, "Error generating report")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		logrus.WithError(err).Error("Error generating report")
		c.String(http.StatusInternalServerError, "Error generating report")
		return
	}

	report, err := tc.service.MonthlyReport(c.Request.Context(), userID, month, year)
	if err != nil {
		logrus.WithError(err).Error("Error generating report")
		c.String(http.StatusInternalServerError, "Error generating report")
		return
	}

	c.JSON(http.StatusOK, report)
}
