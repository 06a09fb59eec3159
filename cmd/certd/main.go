package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/youruser/certgen/internal/api"
	"github.com/youruser/certgen/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: certd <template_image> [font_path]")
		return
	}
	templatePath := os.Args[1]
	fontPath := ""
	if len(os.Args) >= 3 {
		fontPath = os.Args[2]
	}

	// check the template at startup (best-effort)
	if _, err := render.LoadTemplate(templatePath); err != nil {
		log.Println("Warning: failed to load template at startup:", err)
	}

	h := &api.Handlers{
		TemplatePath: templatePath,
		FontPath:     fontPath,
		Fonts:        render.NewFontResolver(runtime.GOOS, render.DefaultFontPaths),
	}

	r := gin.Default()
	api.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
