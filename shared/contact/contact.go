// Package contact builds the links that reach the restaurant outside the
// site: a phone call and a WhatsApp chat.
package contact

import (
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLink opens a chat with number. Anything but digits is dropped from
// the number, so "+351 968 707 515" and "351968707515" give the same link.
// An empty message opens the chat without prefilled text.
func WhatsAppLink(number, message string) string {
	link := whatsAppBaseURL + digits(number)
	if message == "" {
		return link
	}

	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// CallLink returns a tel: link with whitespace removed from phone.
func CallLink(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

func digits(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, number)
}
