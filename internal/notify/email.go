package notify

import (
	"fmt"
	"strings"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// Kind says why the guest is being mailed.
type Kind string

const (
	KindConfirmed Kind = "confirmed"
	KindUpdated   Kind = "updated"
)

// Email is a rendered outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

type copySet struct {
	subjectConfirmed string
	subjectUpdated   string
	titleConfirmed   string
	titleUpdated     string
	greeting         string
	line1Confirmed   string
	line1Updated     string
	details          string
	pax              string
	comments         string
	footer           string
}

// Guest-facing copy in the three languages the restaurant serves. %s / %d
// placeholders are filled per reservation.
var copyByLang = map[string]copySet{
	"en": {
		subjectConfirmed: "Your reservation is confirmed (%s %s)",
		subjectUpdated:   "Your reservation was updated (%s %s)",
		titleConfirmed:   "Reservation confirmed",
		titleUpdated:     "Reservation updated",
		greeting:         "Hi %s,",
		line1Confirmed:   "Your reservation at Charm Thai has been confirmed.",
		line1Updated:     "Your reservation at Charm Thai has been updated.",
		details:          "Details",
		pax:              "Guests",
		comments:         "Notes",
		footer:           "If you have questions, please reply to this email.",
	},
	"de": {
		subjectConfirmed: "Ihre Reservierung ist bestätigt (%s %s)",
		subjectUpdated:   "Ihre Reservierung wurde aktualisiert (%s %s)",
		titleConfirmed:   "Reservierung bestätigt",
		titleUpdated:     "Reservierung aktualisiert",
		greeting:         "Hallo %s,",
		line1Confirmed:   "Ihre Reservierung im Charm Thai wurde bestätigt.",
		line1Updated:     "Ihre Reservierung im Charm Thai wurde aktualisiert.",
		details:          "Details",
		pax:              "Personen",
		comments:         "Anmerkungen",
		footer:           "Wenn Sie Fragen haben, antworten Sie bitte auf diese E-Mail.",
	},
	"th": {
		subjectConfirmed: "ยืนยันการจองเรียบร้อยแล้ว (%s %s)",
		subjectUpdated:   "อัปเดตการจองเรียบร้อยแล้ว (%s %s)",
		titleConfirmed:   "ยืนยันการจอง",
		titleUpdated:     "อัปเดตการจอง",
		greeting:         "สวัสดี %s,",
		line1Confirmed:   "การจองของคุณที่ร้าน Charm Thai ได้รับการยืนยันแล้ว",
		line1Updated:     "การจองของคุณที่ร้าน Charm Thai ได้รับการอัปเดตแล้ว",
		details:          "รายละเอียด",
		pax:              "จำนวนคน",
		comments:         "หมายเหตุ",
		footer:           "หากมีคำถาม กรุณาตอบกลับอีเมลนี้",
	},
}

// BuildEmail renders the guest message for a reservation. Unknown languages
// fall back to English.
func BuildEmail(kind Kind, r booking.Reservation, language string) Email {
	c, ok := copyByLang[language]
	if !ok {
		c = copyByLang["en"]
	}

	subject := c.subjectConfirmed
	title := c.titleConfirmed
	line1 := c.line1Confirmed
	if kind == KindUpdated {
		subject = c.subjectUpdated
		title = c.titleUpdated
		line1 = c.line1Updated
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, c.greeting+"\n", r.GuestName)
	fmt.Fprintf(&b, "%s\n\n", line1)
	fmt.Fprintf(&b, "%s\n", c.details)
	fmt.Fprintf(&b, "%s - %s\n", formatLongDate(r.Date, language), r.Time)
	fmt.Fprintf(&b, "%s: %d\n", c.pax, r.Pax)
	if r.Comments != "" {
		fmt.Fprintf(&b, "%s: %s\n", c.comments, r.Comments)
	}
	fmt.Fprintf(&b, "\n%s\n", c.footer)

	return Email{
		To:      r.Email,
		Subject: fmt.Sprintf(subject, r.Date, r.Time),
		Body:    b.String(),
	}
}

var weekdayNames = map[string][7]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"de": {"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	"th": {"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ", "วันพฤหัสบดี", "วันศุกร์", "วันเสาร์"},
}

// formatLongDate renders "YYYY-MM-DD" with its weekday name, e.g.
// "Monday, 02.06.2025". Falls back to the raw string on bad input.
func formatLongDate(date, language string) string {
	d, err := booking.ParseDate(date)
	if err != nil {
		return date
	}
	names, ok := weekdayNames[language]
	if !ok {
		names = weekdayNames["en"]
	}
	return fmt.Sprintf("%s, %02d.%02d.%04d", names[int(d.Weekday())], d.Day, int(d.Month), d.Year)
}
