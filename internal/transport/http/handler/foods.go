package handler

import (
	"net/http"

	"github.com/abmacros/server/internal/application/food"
)

// FoodHandler serves the food catalog.
type FoodHandler struct {
	catalog *food.Catalog
}

func NewFoodHandler(catalog *food.Catalog) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

func (h *FoodHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}
