package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public registration route
	api.POST("/users", controllers.CreateUser)

	// Protected meal routes
	meals := api.Group("/meals")
	meals.Use(middlewares.SessionMiddleware())
	{
		meals.GET("", controllers.ListMeals)
		meals.GET("/summary", controllers.GetMealsSummary)
		meals.GET("/:id", controllers.GetMeal)
		meals.POST("", controllers.CreateMeal)
		meals.PATCH("/:id", controllers.UpdateMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	return r
}
