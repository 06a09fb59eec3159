package api

import (
	"fmt"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/certgen/internal/names"
	"github.com/youruser/certgen/internal/pdfout"
	"github.com/youruser/certgen/internal/render"
)

// Handlers carries the service configuration: the default template and the
// font resolver built at startup.
type Handlers struct {
	TemplatePath string
	FontPath     string
	Fonts        *render.FontResolver
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type labelRequest struct {
	Text string  `json:"text"`
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Size float64 `json:"size"`
}

// certificate: renders one certificate and streams the PDF back
func (h *Handlers) certificateHandler(c *gin.Context) {
	var req struct {
		Name        string         `json:"name"`
		TemplateURL string         `json:"template_url"`
		X           int            `json:"x"`
		Y           int            `json:"y"`
		Size        float64        `json:"size"`
		Labels      []labelRequest `json:"labels"`
		VerifyURL   string         `json:"verify_url"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := names.Normalize(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.Size <= 0 {
		req.Size = 30
	}

	var tmpl image.Image
	var err error
	if req.TemplateURL != "" {
		tmpl, err = render.FetchTemplate(req.TemplateURL)
	} else {
		tmpl, err = render.LoadTemplate(h.TemplatePath)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	labels := []render.Label{{Text: name, X: req.X, Y: req.Y, Size: req.Size}}
	for _, lb := range req.Labels {
		labels = append(labels, render.Label{Text: lb.Text, X: lb.X, Y: lb.Y, Size: lb.Size})
	}

	comp := &render.Compositor{Fonts: h.Fonts, FontPath: h.FontPath}
	canvas := comp.Overlay(tmpl, labels)

	if req.VerifyURL != "" {
		if qr, err := render.VerificationQR(req.VerifyURL, 256); err == nil {
			canvas = render.StampQR(canvas, qr, 120, 24)
		} else {
			log.Println("verification qr error:", err)
		}
	}

	out, err := pdfout.Render(canvas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfout.FileName(name)))
	c.Data(http.StatusOK, "application/pdf", out)
}

// qr endpoint returns a PNG of a verification QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := render.VerificationQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
