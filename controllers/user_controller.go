package controllers

import (
	"errors"
	"time"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var userUpdatableFields = []string{"display_name", "photo_url", "phone"}

// GetUsers lists users, optionally filtered by searchText over name and email
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{}).
		Scopes(utils.SearchScope(c.Query("searchText"), "display_name", "email"))

	var users []models.User
	if err := pagination.FindPage(query, "created_at DESC", &users); err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", users, pagination)
}

// CreateUser registers a user after their first sign-in. Registering an
// existing email returns the stored user instead of failing.
func CreateUser(c *gin.Context) {
	utils.LogInfo("CreateUser called")

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.LogError("Invalid user body: %v", err)
		utils.BadRequest(c, utils.ErrInvalidRequest, err.Error())
		return
	}
	if err := utils.ValidateUser(&user); err != nil {
		utils.BadRequest(c, "Validation failed", err)
		return
	}

	existing, err := utils.GetUserByEmail(config.DB, user.Email)
	if err == nil {
		utils.LogInfo("User %s already exists", user.Email)
		utils.Success(c, "User already exists", gin.H{"exists": true, "user": existing})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to look up user %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	user.ID = 0
	user.Role = models.RoleUser
	user.CreatedAt = time.Now()
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	utils.LogInfo("Created user %d (%s)", user.ID, user.Email)
	utils.Created(c, "User created successfully", user)
}

func GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := utils.FindByID(config.DB, &user, id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "User retrieved successfully", user)
}

func UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updates, ok := bindUpdates(c, userUpdatableFields...)
	if !ok {
		return
	}
	if err := utils.UpdateByID(config.DB, &models.User{}, id, updates); err != nil {
		utils.LogError("Failed to update user %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Updated user %d", id)
	utils.Success(c, "User updated successfully", gin.H{"id": id, "updated": updates})
}

func DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := utils.DeleteByID(config.DB, &models.User{}, id); err != nil {
		utils.LogError("Failed to delete user %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Deleted user %d", id)
	utils.Success(c, "User deleted successfully", gin.H{"id": id})
}

// GetUserRole reports the role for an email, defaulting to "user". The route
// shares the /users/:id prefix, so the email arrives in the id parameter.
func GetUserRole(c *gin.Context) {
	email := c.Param("id")
	role, err := utils.UserRole(config.DB, email)
	if err != nil {
		utils.LogError("Failed to fetch role for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to fetch role", err.Error())
		return
	}
	utils.Success(c, "Role retrieved successfully", gin.H{"role": role})
}
