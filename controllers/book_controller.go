package controllers

import (
	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

var bookUpdatableFields = []string{
	"title", "author", "description", "category", "condition",
	"price", "quantity", "image_url", "status",
}

// CreateBook lists a new book
func CreateBook(c *gin.Context) {
	utils.LogInfo("CreateBook called")

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		utils.LogError("Invalid book body: %v", err)
		utils.BadRequest(c, utils.ErrInvalidRequest, err.Error())
		return
	}
	if err := utils.ValidateBook(&book); err != nil {
		utils.BadRequest(c, "Validation failed", err)
		return
	}

	book.ID = 0
	if err := config.DB.Create(&book).Error; err != nil {
		utils.LogError("Failed to create book: %v", err)
		utils.InternalServerError(c, "Failed to create book", err.Error())
		return
	}

	utils.LogInfo("Created book %d (%s) for seller %s", book.ID, book.Title, book.SellerEmail)
	utils.Created(c, "Book created successfully", book)
}

// GetBooks lists books newest first. Supports seller_email, category and
// search (title or author) filters.
func GetBooks(c *gin.Context) {
	utils.LogInfo("GetBooks called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Book{}).
		Scopes(utils.SearchScope(c.Query("search"), "title", "author"))
	if sellerEmail := c.Query("seller_email"); sellerEmail != "" {
		query = query.Where("seller_email = ?", sellerEmail)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var books []models.Book
	if err := pagination.FindPage(query, "created_at DESC", &books); err != nil {
		utils.LogError("Failed to fetch books: %v", err)
		utils.InternalServerError(c, "Failed to fetch books", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Books retrieved successfully", books, pagination)
}

func GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var book models.Book
	if err := utils.FindByID(config.DB, &book, id); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "Book retrieved successfully", book)
}

func UpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updates, ok := bindUpdates(c, bookUpdatableFields...)
	if !ok {
		return
	}
	if err := utils.UpdateByID(config.DB, &models.Book{}, id, updates); err != nil {
		utils.LogError("Failed to update book %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Updated book %d", id)
	utils.Success(c, "Book updated successfully", gin.H{"id": id, "updated": updates})
}

func DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := utils.DeleteByID(config.DB, &models.Book{}, id); err != nil {
		utils.LogError("Failed to delete book %d: %v", id, err)
		utils.RespondWithError(c, err)
		return
	}
	utils.LogInfo("Deleted book %d", id)
	utils.Success(c, "Book deleted successfully", gin.H{"id": id})
}
