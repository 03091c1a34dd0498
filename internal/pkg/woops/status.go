package woops

import "github.com/gofiber/fiber/v2/utils"

// UnknownStatusText is the reason phrase used for codes outside the table.
const UnknownStatusText = "Unknown"

// StatusText returns the reason phrase for an HTTP status code
func StatusText(code int) string {
	if text := utils.StatusMessage(code); text != "" {
		return text
	}
	return UnknownStatusText
}
