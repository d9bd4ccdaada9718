package middleware

import "github.com/gin-gonic/gin"

const flashCookieName = "fuelquote_flash"

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash message.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
