package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-checkin/controllers"
	"hotel-checkin/middleware"
	"hotel-checkin/templates"
)

// SetupRouter wires the controllers onto a gin engine.
func SetupRouter(
	origins []string,
	pc *controllers.PageController,
	wc *controllers.WizardController,
	hc *controllers.HistoryController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.SetHTMLTemplate(templates.Must())

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", pc.Index)

	api := r.Group("/api")
	{
		api.GET("/rules", pc.Rules)
		api.GET("/labels", pc.Labels)

		wizard := api.Group("/wizard")
		{
			wizard.GET("", wc.GetState)
			wizard.POST("/start", wc.Start)
			wizard.POST("/skip-id", wc.SkipIDCapture)
			wizard.POST("/next", wc.Next)
			wizard.POST("/back", wc.Back)
			wizard.POST("/reset", wc.Reset)
			wizard.POST("/history", wc.OpenHistory)
			wizard.POST("/history/close", wc.CloseHistory)
			wizard.PATCH("/record", wc.UpdateRecord)
			wizard.POST("/id-capture", wc.CaptureID)
			wizard.POST("/id-capture/switch", wc.SwitchCamera)
			wizard.POST("/signature", wc.Sign)
		}

		history := api.Group("/history")
		{
			history.GET("", hc.List)

			// static segment before /:id
			history.GET("/export", hc.Export)

			history.GET("/:id", hc.Get)
			history.POST("/:id/edit", hc.Edit)
			history.DELETE("/:id", hc.Delete)
			history.GET("/:id/receipt", hc.Receipt)
			history.GET("/:id/share", hc.Share)
			history.GET("/:id/qr.png", hc.QRCode)
		}
	}

	return r
}
