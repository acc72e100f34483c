package controllers

import (
	"errors"
	"log"
	"net/http"

	"backend/config"
	"backend/middlewares"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middlewares.UserKey).(*models.User)
}

func mealID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Param id: Invalid uuid"})
		return uuid.Nil, false
	}
	return id, true
}

// mealError maps the ledger error taxonomy onto status codes. Validation and
// not-found are expected control flow; anything else is logged and hidden
// behind a uniform 500.
func mealError(c *gin.Context, err error) {
	var perr *utils.ParamError
	switch {
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{"message": perr.Error()})
	case errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Printf("meal request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func ListMeals(c *gin.Context) {
	user := currentUser(c)

	meals, err := services.NewMealService(config.DB).List(user.ID)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	user := currentUser(c)
	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Get(user.ID, id)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

type CreateMealInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MealDate    string `json:"meal_date"`
	OnDiet      *bool  `json:"on_diet"`
}

func CreateMeal(c *gin.Context) {
	user := currentUser(c)

	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	meal, err := services.NewMealService(config.DB).
		Create(user.ID, input.Name, input.Description, input.MealDate, input.OnDiet)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type UpdateMealInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MealDate    *string `json:"meal_date"`
	OnDiet      *bool   `json:"on_diet"`
}

func UpdateMeal(c *gin.Context) {
	user := currentUser(c)
	id, ok := mealID(c)
	if !ok {
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	patch := services.MealPatch{
		Name:        input.Name,
		Description: input.Description,
		MealDate:    input.MealDate,
		OnDiet:      input.OnDiet,
	}
	if err := services.NewMealService(config.DB).Update(user.ID, id, patch); err != nil {
		mealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteMeal(c *gin.Context) {
	user := currentUser(c)
	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := services.NewMealService(config.DB).Delete(user.ID, id); err != nil {
		mealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetMealsSummary(c *gin.Context) {
	user := currentUser(c)

	svc := services.NewSummaryService(config.DB, config.CountTrailingStreak())
	summary, err := svc.Summarize(user.ID)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
