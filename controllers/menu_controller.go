package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant/entity"
	"restaurant/pkg/resp"
	"restaurant/repository"
	"restaurant/utils"
)

type MenuController struct {
	Menu *repository.MenuRepository
}

func NewMenuController(menu *repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

type MenuItemView struct {
	entity.MenuItem
	PriceDisplay string `json:"priceDisplay"`
}

func toView(it entity.MenuItem) MenuItemView {
	return MenuItemView{MenuItem: it, PriceDisplay: utils.FormatCents(it.PriceCents)}
}

// GET /menu?search=&category=
func (mc *MenuController) List(c *gin.Context) {
	items := mc.Menu.Search(c.Query("search"), c.Query("category"))
	out := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, toView(it))
	}
	resp.OK(c, out)
}

// GET /menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	resp.OK(c, mc.Menu.Categories())
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	it, ok := mc.Menu.FindByID(c.Param("id"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, toView(it))
}
