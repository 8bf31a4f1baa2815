package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/models"
	"recipeshare/internal/service"
)

// recipeRequest serves both create and update. Pointers distinguish omitted
// fields from explicitly empty ones; StringList accepts a bare string for
// ingredients and coerces it to a one-element list.
type recipeRequest struct {
	Title        *string           `json:"title"`
	Description  *string           `json:"description"`
	Ingredients  models.StringList `json:"ingredients"`
	Instructions *string           `json:"instructions"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/recipes [get]
func (h *Handler) listRecipes(c *gin.Context) {
	recipes, err := h.services.Recipes.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(recipes),
		"recipes": recipes,
	})
}

func (h *Handler) searchRecipes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	results, err := h.services.Recipes.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *Handler) getRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.services.Recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *Handler) recipesByUser(c *gin.Context) {
	ownerID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	recipes, err := h.services.Recipes.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(recipes),
		"recipes": recipes,
	})
}

func (h *Handler) createRecipe(c *gin.Context) {
	var input recipeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	recipe, err := h.services.Recipes.Create(c.Request.Context(), service.RecipeInput{
		Title:        deref(input.Title),
		Description:  deref(input.Description),
		Ingredients:  input.Ingredients,
		Instructions: deref(input.Instructions),
	}, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  recipe,
	})
}

func (h *Handler) updateRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input recipeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	recipe, err := h.services.Recipes.Update(c.Request.Context(), id, service.RecipeUpdate{
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  recipe,
	})
}

func (h *Handler) deleteRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Recipes.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
