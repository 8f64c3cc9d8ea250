package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Booking platforms and call-to-action phrases common on UAE clinic and
// retail sites.
var bookingKeywords = []string{
	"book now", "book an appointment", "book appointment", "booking",
	"calendly", "okadoc", "vezeeta", "zocdoc", "practo", "doctoruna",
	"reserve now", "schedule a visit",
}

var whatsappKeywords = []string{"wa.me", "api.whatsapp.com", "whatsapp"}

// detectBooking reports whether the page carries a booking affordance:
// links or visible text first, then class/id/form-action markers.
func detectBooking(p *Page) bool {
	if anyLinkOrText(p, bookingKeywords) {
		return true
	}

	found := false
	p.doc.Find("[class], [id], form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		probe := ""
		for _, attr := range []string{"class", "id", "action"} {
			if v, ok := s.Attr(attr); ok {
				probe += " " + strings.ToLower(v)
			}
		}
		for _, kw := range []string{"booking", "appointment", "reservation"} {
			if strings.Contains(probe, kw) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func detectWhatsApp(p *Page) bool {
	return anyLinkOrText(p, whatsappKeywords)
}

func detectInstagram(p *Page) bool {
	return anyLinkOrText(p, []string{"instagram.com"})
}

// anyLinkOrText matches keywords against every link href and its visible
// label, then against the whole body text.
func anyLinkOrText(p *Page, keywords []string) bool {
	found := false
	p.doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		probe := strings.ToLower(href + " " + s.Text())
		for _, kw := range keywords {
			if strings.Contains(probe, kw) {
				found = true
				return false
			}
		}
		return true
	})
	if found {
		return true
	}

	body := strings.ToLower(p.doc.Find("body").Text())
	for _, kw := range keywords {
		if strings.Contains(body, kw) {
			return true
		}
	}
	return false
}
