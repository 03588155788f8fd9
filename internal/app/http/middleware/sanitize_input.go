package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// richFields may carry editor HTML; they keep safe markup instead of being stripped.
var richFields = map[string]bool{
	"content": true,
}

// SanitizeAndCleanInputMiddleware strips markup from top-level string fields
// of JSON bodies with bluemonday. Numbers pass through untouched.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	strict := bluemonday.StrictPolicy()
	ugc := bluemonday.UGCPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, http.StatusBadRequest, "BadRequest", "Invalid body")
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			abort(c, http.StatusBadRequest, "BadRequest", "Malformed JSON")
			return
		}

		for k, v := range body {
			str, ok := v.(string)
			if !ok {
				continue
			}
			if richFields[k] {
				body[k] = ugc.Sanitize(str)
			} else {
				// Plain-text fields are forwarded as text, not HTML.
				body[k] = html.UnescapeString(strict.Sanitize(str))
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
