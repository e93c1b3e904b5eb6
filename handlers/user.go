package handlers

import (
	"net/http"

	"smarthome/models"
	"smarthome/services/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	u, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Error fetching user")
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser handles POST /users. Registering an existing email is not an error.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "details": err.Error()})
		return
	}

	id, created, err := h.userService.CreateUser(c.Request.Context(), &u)
	if err != nil {
		respondError(c, err, "Error creating user")
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UpdateUserRole handles PATCH /users/role/:email.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
		return
	}

	matched, err := h.userService.UpdateRole(c.Request.Context(), c.Param("email"), body.Role)
	if err != nil {
		respondError(c, err, "Error updating role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}
