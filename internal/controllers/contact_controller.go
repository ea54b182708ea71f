package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type ContactController struct {
	store storage.Store
}

func NewContactController(store storage.Store) *ContactController {
	return &ContactController{store: store}
}

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (ctrl *ContactController) List(c *gin.Context) {
	contacts, err := ctrl.store.Contacts()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Create is public. New inquiries always start unread.
func (ctrl *ContactController) Create(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact input: " + err.Error()})
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		IsRead:  false,
	}
	if err := ctrl.store.CreateContact(&contact); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (ctrl *ContactController) MarkRead(c *gin.Context) {
	contact, err := ctrl.store.MarkContactRead(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (ctrl *ContactController) Delete(c *gin.Context) {
	if err := ctrl.store.DeleteContact(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
