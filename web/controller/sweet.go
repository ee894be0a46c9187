package controller

import (
	"net/http"
	"strconv"

	"sweet-shop/database"
	"sweet-shop/web/entity"
	"sweet-shop/web/service"

	"github.com/gin-gonic/gin"
)

// SweetController handles catalog browsing, inventory management, and
// purchasing.
type SweetController struct {
	sweetService    service.SweetService
	purchaseService service.PurchaseService
}

// NewSweetController creates a SweetController and sets up its routes.
func NewSweetController(g *gin.RouterGroup) *SweetController {
	a := &SweetController{}
	a.initRouter(g)
	return a
}

func (a *SweetController) initRouter(g *gin.RouterGroup) {
	g.GET("/sweets", a.getSweets)
	g.GET("/sweets/search", a.searchSweets)
	g.GET("/sweets/:id", a.getSweet)
	g.POST("/sweets", a.addSweet)
	g.DELETE("/sweets/:id", a.deleteSweet)
	g.POST("/sweets/:id/purchase", a.purchaseSweet)
	g.POST("/sweets/:id/restock", a.restockSweet)
	g.GET("/categories", a.getCategories)
}

// getSweets lists the whole catalog, newest first.
func (a *SweetController) getSweets(c *gin.Context) {
	sweets, err := a.sweetService.GetSweets()
	if err != nil {
		pureError(c, http.StatusInternalServerError, "Database error")
		return
	}
	renderJSON(c, http.StatusOK, entity.SweetList{Sweets: sweets})
}

// searchSweets filters by name and category substrings.
func (a *SweetController) searchSweets(c *gin.Context) {
	sweets, err := a.sweetService.SearchSweets(c.Query("name"), c.Query("category"))
	if err != nil {
		pureError(c, http.StatusInternalServerError, err.Error())
		return
	}
	renderJSON(c, http.StatusOK, entity.SweetList{Sweets: sweets})
}

// getSweet fetches a single sweet by id.
func (a *SweetController) getSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureError(c, http.StatusNotFound, "Sweet not found")
		return
	}

	sweet, err := a.sweetService.GetSweet(id)
	if database.IsNotFound(err) {
		pureError(c, http.StatusNotFound, "Sweet not found")
		return
	}
	if err != nil {
		pureError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, sweet)
}

type sweetForm struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// addSweet creates a catalog entry.
func (a *SweetController) addSweet(c *gin.Context) {
	var form sweetForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Name == "" || form.Price == 0 {
		jsonError(c, http.StatusBadRequest, "Name and price required")
		return
	}

	sweet, err := a.sweetService.AddSweet(form.Name, form.Category, form.Price, form.Quantity)
	if err != nil {
		jsonError(c, http.StatusConflict, err.Error())
		return
	}

	c.JSON(http.StatusOK, entity.SweetResponse{
		Success: true,
		Msg:     "Sweet added successfully",
		Sweet:   *sweet,
	})
}

// deleteSweet removes a catalog entry.
func (a *SweetController) deleteSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureError(c, http.StatusNotFound, "Sweet not found")
		return
	}

	err = a.sweetService.DeleteSweet(id)
	if database.IsNotFound(err) {
		pureError(c, http.StatusNotFound, "Sweet not found")
		return
	}
	if err != nil {
		pureError(c, http.StatusInternalServerError, "Failed to delete")
		return
	}
	jsonMsg(c, "Sweet deleted")
}

type purchaseForm struct {
	UserId   int `json:"user_id"`
	Quantity int `json:"quantity"`
}

// purchaseSweet buys a quantity of one sweet for a user.
func (a *SweetController) purchaseSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Sweet not found")
		return
	}

	form := purchaseForm{Quantity: 1}
	if err := c.ShouldBindJSON(&form); err != nil || form.UserId == 0 {
		jsonError(c, http.StatusBadRequest, "User ID required. Please login first.")
		return
	}
	if form.Quantity <= 0 {
		jsonError(c, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	receipt, err := a.purchaseService.Purchase(id, form.UserId, form.Quantity)
	if err != nil {
		if database.IsNotFound(err) {
			jsonError(c, http.StatusNotFound, "Sweet not found")
			return
		}
		if stockErr, ok := err.(*service.InsufficientStockError); ok {
			jsonError(c, http.StatusBadRequest, stockErr.Error())
			return
		}
		jsonError(c, http.StatusInternalServerError, "Purchase failed")
		return
	}

	c.JSON(http.StatusOK, entity.PurchaseResponse{
		Success:         true,
		Msg:             "Purchase successful!",
		PurchaseDetails: *receipt,
	})
}

// restockSweet adds the fixed restock step to the sweet's quantity.
func (a *SweetController) restockSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Sweet not found")
		return
	}

	sweet, err := a.sweetService.RestockSweet(id)
	if database.IsNotFound(err) {
		jsonError(c, http.StatusNotFound, "Sweet not found")
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Restock failed")
		return
	}

	c.JSON(http.StatusOK, entity.SweetResponse{
		Success: true,
		Msg:     "Restocked 10 items",
		Sweet:   *sweet,
	})
}

// getCategories returns the distinct categories as a bare sorted array.
func (a *SweetController) getCategories(c *gin.Context) {
	categories, err := a.sweetService.GetCategories()
	if err != nil {
		pureError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, categories)
}
