// Package handoff builds the deep links used to continue a booking by chat.
package handoff

import (
	"fmt"
	"net/url"
	"strings"
)

const waBaseURL = "https://wa.me/"

// LinkParams are the values interpolated into the pre-filled message.
type LinkParams struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Pickup  string `json:"pickup" validate:"required"`
	Dropoff string `json:"dropoff" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Item    string `json:"item" validate:"required"`
}

// Message renders the pre-filled chat text.
func (p LinkParams) Message() string {
	return fmt.Sprintf("Hola, soy %s. Quiero enviar %s de %s a %s el %s. ¿Disponibilidad?",
		p.Name, p.Item, p.Pickup, p.Dropoff, p.Date)
}

// WhatsAppLink returns a wa.me link to p.Phone with the message percent-encoded.
func WhatsAppLink(p LinkParams) string {
	return waBaseURL + digitsOnly(p.Phone) + "?text=" + encodeText(p.Message())
}

func digitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var textEscaper = strings.NewReplacer("+", "%20", "%2F", "/")

// encodeText escapes s for a query value using %20 for spaces. Slashes are
// left as is so dates like 01/06/2024 stay readable.
func encodeText(s string) string {
	return textEscaper.Replace(url.QueryEscape(s))
}
