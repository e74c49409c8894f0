package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexPage []byte

// ServeIndex serves the embedded single-page UI. The page is a plain API
// client; it holds no state of its own and re-fetches the list after every
// mutation.
func ServeIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}
