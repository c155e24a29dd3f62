// controllers/notes.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"bookacut-backend/services"
	"bookacut-backend/utils"

	"github.com/gin-gonic/gin"
)

type SaveNoteInput struct {
	Date string `json:"date" binding:"required"` // yyyy-mm-dd
	Note string `json:"note"`
}

type NotesController struct {
	Store *services.NoteStore
}

func NewNotesController(store *services.NoteStore) *NotesController {
	return &NotesController{Store: store}
}

// Month returns the notes for the requested month (defaults to the
// current one).
func (nc *NotesController) Month(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
			return
		}
		month = time.Month(m)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"notes": nc.Store.Month(year, month),
	})
}

// Upcoming returns the notes for the next 14 days
func (nc *NotesController) Upcoming(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notes": nc.Store.Upcoming(time.Now(), 14)})
}

// Save upserts the note for a day
func (nc *NotesController) Save(c *gin.Context) {
	var input SaveNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	nc.Store.Upsert(date, input.Note)
	c.JSON(http.StatusOK, gin.H{"date": input.Date, "note": input.Note})
}

// Delete removes the note for a day; a missing note is a no-op
func (nc *NotesController) Delete(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	nc.Store.Delete(date)
	c.JSON(http.StatusOK, gin.H{"date": c.Param("date")})
}
