package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quicklink/config"
)

// ContactLink is one business phone number with its WhatsApp deep link.
type ContactLink struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

// ContactHandler serves the contact-page numbers.
type ContactHandler struct{}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Contact handles GET /api/contact.
func (h *ContactHandler) Contact(c *gin.Context) {
	cc := config.AppConfig.BusinessCountryCode
	links := make([]ContactLink, 0)
	for _, phone := range config.BusinessPhoneList() {
		links = append(links, ContactLink{
			Phone:    phone,
			WhatsApp: whatsAppLink(cc, phone),
		})
	}
	c.JSON(http.StatusOK, links)
}

// whatsAppLink builds a wa.me link, replacing the local leading zero with
// the country code.
func whatsAppLink(countryCode, phone string) string {
	return fmt.Sprintf("https://wa.me/%s%s", countryCode, strings.TrimPrefix(phone, "0"))
}
