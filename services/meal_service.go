package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) List(userID uuid.UUID) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("meal_date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

// find resolves a meal by id alone. Ownership is not part of the lookup:
// get/update/delete all answer on existence, uniformly.
func (s *MealService) find(id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.First(&meal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Get(userID, id uuid.UUID) (*models.Meal, error) {
	return s.find(id)
}

// Create validates fields in declaration order and persists the meal for
// userID. mealDate arrives as the raw request value so a bad date reports
// against the right field.
func (s *MealService) Create(userID uuid.UUID, name, description, mealDate string, onDiet *bool) (*models.Meal, error) {
	if perr := utils.RequireText("name", name, 255); perr != nil {
		return nil, perr
	}
	if perr := utils.RequireText("description", description, 1000); perr != nil {
		return nil, perr
	}
	date, perr := utils.ParseDate("meal_date", mealDate)
	if perr != nil {
		return nil, perr
	}
	if onDiet == nil {
		return nil, &utils.ParamError{Field: "on_diet", Reason: "Required"}
	}

	meal := models.Meal{
		UserID:      userID,
		Name:        name,
		Description: description,
		MealDate:    date,
		OnDiet:      *onDiet,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealPatch carries the fields of a partial update; nil means leave
// unchanged.
type MealPatch struct {
	Name        *string
	Description *string
	MealDate    *string
	OnDiet      *bool
}

// Update applies the provided fields in one statement, so either all of them
// land or none do. Provided values follow the same rules as Create.
func (s *MealService) Update(userID, id uuid.UUID, patch MealPatch) error {
	meal, err := s.find(id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		if perr := utils.RequireText("name", *patch.Name, 255); perr != nil {
			return perr
		}
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		if perr := utils.RequireText("description", *patch.Description, 1000); perr != nil {
			return perr
		}
		fields["description"] = *patch.Description
	}
	if patch.MealDate != nil {
		date, perr := utils.ParseDate("meal_date", *patch.MealDate)
		if perr != nil {
			return perr
		}
		fields["meal_date"] = date
	}
	if patch.OnDiet != nil {
		fields["on_diet"] = *patch.OnDiet
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(meal).Updates(fields).Error
}

func (s *MealService) Delete(userID, id uuid.UUID) error {
	meal, err := s.find(id)
	if err != nil {
		return err
	}
	return s.db.Delete(meal).Error
}
