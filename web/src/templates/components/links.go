// Package components holds the reusable view fragments of the site.
package components

import "net/url"

// CallHref is the tracked link that redirects to the firm's phone number.
func CallHref(location string) string {
	return "/go/call?location=" + url.QueryEscape(location)
}

// WhatsAppHref is the tracked link that redirects to the firm's WhatsApp chat.
func WhatsAppHref(location string) string {
	return "/go/whatsapp?location=" + url.QueryEscape(location)
}
