package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the /api route group.
func SetupRouter(
	hc *controllers.HousekeepingController,
	ic *controllers.InventoryController,
	ac *controllers.AuthController,
	cc *controllers.ContactController,
	mc *controllers.MenuController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Housekeeping
		api.GET("/pending-rooms", hc.GetPendingRooms)
		api.GET("/completed-rooms", hc.GetCompletedRooms)
		api.GET("/maintanance-rooms", hc.GetMaintenanceRooms)
		api.GET("/room-numbers", hc.GetRoomNumbers)
		api.GET("/dashboard-stats", hc.GetDashboardStats)

		api.GET("/staff", hc.GetStaff)
		api.POST("/staff", hc.CreateStaff)

		api.POST("/task", hc.CreateTask)
		api.PATCH("/task/status", hc.UpdateTaskStatus)
		api.DELETE("/task", hc.DeleteTask)

		// Inventory
		inventory := api.Group("/inventory")
		{
			inventory.GET("", ic.GetItems)
			inventory.POST("", ic.CreateItem)
			inventory.PATCH("/:id/restock", ic.RestockItem)
			inventory.GET("/transactions", ic.GetTransactions)
			inventory.POST("/transactions", ic.CreateTransaction)
		}

		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		// Contact
		contact := api.Group("/contact")
		{
			contact.POST("", cc.CreateMessage)
			contact.GET("", cc.GetMessages)
		}

		// Menu catalog
		menu := api.Group("/menu")
		{
			menu.GET("/categories", mc.GetCategories)
			menu.POST("/categories", mc.CreateCategory)
			menu.DELETE("/categories/:id", mc.DeleteCategory)

			menu.GET("/items", mc.GetItems)
			menu.POST("/items", mc.CreateItem)
			menu.PATCH("/items/:id", mc.UpdateItem)
			menu.DELETE("/items/:id", mc.DeleteItem)
		}
	}

	return r
}
