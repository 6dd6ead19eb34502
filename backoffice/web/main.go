package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"kasira.com/kasira/backoffice/web/handlers"
	"kasira.com/kasira/backoffice/web/handlers/closing"
	"kasira.com/kasira/backoffice/web/handlers/wizard"
	"kasira.com/kasira/core"
	"kasira.com/kasira/infrastructure/communication"
	"kasira.com/kasira/infrastructure/devops"
	"kasira.com/kasira/web/common"
	uploads "kasira.com/kasira/web/handlers"
	"kasira.com/kasira/web/middlewares"
)

func main() {
	r := gin.Default()
	dsn := os.Getenv("DSN")
	fmt.Printf("using DSN: %s\n", dsn)
	region := os.Getenv("AWS_REGION")
	fmt.Printf("using REGION: %s\n", region)
	dm, err := core.New(dsn, 10)

	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	slack := communication.ConnectSlack()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.POST("/upload/multiple", uploads.UploadMultipleHandler)
	base64Secret := os.Getenv("KASIRA_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r.GET("/api/backoffice/manifest/dev", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "1.0.0-dev",
			"description": "Kasira Back Office API Manifest for Development",
		})
	})

	protected := r.Group("/api/backoffice/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.GET("/hello", func(c *gin.Context) {
			claims, _ := c.Get("claims")
			c.JSON(200, gin.H{
				"message": "Hello operator!",
				"claims":  claims,
			})
		})

		closing.Register(protected, dm)
		wizard.Register(protected, dm, slack)

		protected.GET("/locations", func(c *gin.Context) {
			locations, err := devops.LoadLocationConfig(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusOK, common.NewSuccessResponse(locations))
		})

		protected.POST("/push", handlers.RegisterPushHandler(dm))

		protected.GET("/files", uploads.ListUploadsHandler)
		protected.GET("/files/download", uploads.DownloadHandler)
	}

	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")
	r.Static("/backoffice/assets", "./public/assets")

	r.GET("/backoffice", func(c *gin.Context) {
		c.File("./public/index.html")
	})

	r.NoRoute(func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Redirect(http.StatusFound, "/backoffice")
			return
		}
	})

	r.Run("0.0.0.0:8090")
}
