package controllers

import (
	"errors"
	"log"
	"net/http"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // 7 days

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// A caller that already holds a session keeps it; otherwise Register
	// mints a fresh token for the new user.
	var presented *uuid.UUID
	if raw, err := c.Cookie("sessionId"); err == nil {
		if session, err := uuid.Parse(raw); err == nil {
			presented = &session
		}
	}

	user, err := services.NewUserService(config.DB).Register(input.Name, input.Email, presented)
	if err != nil {
		var perr *utils.ParamError
		switch {
		case errors.As(err, &perr):
			c.JSON(http.StatusBadRequest, gin.H{"message": perr.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Printf("create user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.SetCookie("sessionId", user.SessionID.String(), sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"session_id": user.SessionID})
}
