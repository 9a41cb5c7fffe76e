package controllers

import (
	"errors"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// wishlistBooks returns the books on email's wishlist, most recently added first
func wishlistBooks(email string) ([]models.Book, error) {
	var books []models.Book
	err := config.DB.
		Select("books.*").
		Joins("JOIN wishlists ON wishlists.book_id = books.id").
		Where("wishlists.user_email = ?", email).
		Order("wishlists.created_at DESC").
		Find(&books).Error
	return books, err
}

// GetWishlist retrieves the caller's wishlist
func GetWishlist(c *gin.Context) {
	email := c.GetString(utils.ContextEmail)
	books, err := wishlistBooks(email)
	if err != nil {
		utils.LogError("Failed to fetch wishlist for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to fetch wishlist", err.Error())
		return
	}
	utils.Success(c, "Wishlist retrieved successfully", gin.H{"wishlist": books})
}

// AddToWishlist adds a book to the caller's wishlist; adding it twice is a no-op
func AddToWishlist(c *gin.Context) {
	email := c.GetString(utils.ContextEmail)

	var req struct {
		BookID uint `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. book_id is required", err.Error())
		return
	}

	if _, err := utils.GetBookByID(config.DB, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Book not found")
			return
		}
		utils.InternalServerError(c, "Failed to fetch book", err.Error())
		return
	}

	entry := models.Wishlist{UserEmail: email, BookID: req.BookID}
	err := config.DB.
		Where("user_email = ? AND book_id = ?", email, req.BookID).
		FirstOrCreate(&entry).Error
	if err != nil {
		utils.LogError("Failed to add book %d to wishlist of %s: %v", req.BookID, email, err)
		utils.InternalServerError(c, "Failed to update wishlist", err.Error())
		return
	}

	books, err := wishlistBooks(email)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch wishlist", err.Error())
		return
	}
	utils.LogInfo("Book %d on wishlist of %s", req.BookID, email)
	utils.Success(c, "Book added to wishlist", gin.H{"wishlist": books})
}

// RemoveFromWishlist removes a book from the caller's wishlist
func RemoveFromWishlist(c *gin.Context) {
	email := c.GetString(utils.ContextEmail)
	bookID, ok := pathID(c, "book_id")
	if !ok {
		return
	}

	if err := config.DB.Where("user_email = ? AND book_id = ?", email, bookID).Delete(&models.Wishlist{}).Error; err != nil {
		utils.LogError("Failed to remove book %d from wishlist of %s: %v", bookID, email, err)
		utils.InternalServerError(c, "Failed to update wishlist", err.Error())
		return
	}

	books, err := wishlistBooks(email)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch wishlist", err.Error())
		return
	}
	utils.Success(c, "Book removed from wishlist", gin.H{"wishlist": books})
}
