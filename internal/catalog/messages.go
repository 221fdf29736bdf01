package catalog

// Messages mirrors the key set of every catalog file. Decoding rejects
// unknown keys and validation rejects empty leaves, so a key missing from one
// language fails at load time instead of rendering blank.
type Messages struct {
	Nav         Nav         `json:"nav"`
	Meta        Meta        `json:"meta"`
	Hero        Hero        `json:"hero"`
	Menu        Menu        `json:"menu"`
	Reservation Reservation `json:"reservation"`
	Contact     Contact     `json:"contact"`
	Intro       Intro       `json:"intro"`
	NotFound    NotFound    `json:"notFound"`
	Footer      Footer      `json:"footer"`
}

type Nav struct {
	Home         string `json:"home"`
	Menu         string `json:"menu"`
	Reservations string `json:"reservations"`
	Contact      string `json:"contact"`
	Reserve      string `json:"reserve"`
	Language     string `json:"language"`
}

type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Meta struct {
	Home         PageMeta `json:"home"`
	Menu         PageMeta `json:"menu"`
	Reservations PageMeta `json:"reservations"`
	Contact      PageMeta `json:"contact"`
}

type Hero struct {
	Badge          string `json:"badge"`
	Title          string `json:"title"`
	TitleHighlight string `json:"titleHighlight"`
	Subtitle       string `json:"subtitle"`
	CTA            string `json:"cta"`
	CTASecondary   string `json:"ctaSecondary"`
}

type Menu struct {
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Starters    string `json:"starters"`
	Grill       string `json:"grill"`
	Sides       string `json:"sides"`
	Desserts    string `json:"desserts"`
	Drinks      string `json:"drinks"`
}

type Reservation struct {
	Badge           string                 `json:"badge"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Info            ReservationInfo        `json:"info"`
	Form            ReservationForm        `json:"form"`
	Validation      ReservationValidation  `json:"validation"`
	Success         ReservationSuccess     `json:"success"`
	Error           ReservationError       `json:"error"`
	WhatsAppMessage string                 `json:"whatsappMessage"`
	Placeholders    ReservationPlaceholder `json:"placeholders"`
}

type ReservationInfo struct {
	Schedule  string `json:"schedule"`
	MinGuests string `json:"minGuests"`
	AllDays   string `json:"allDays"`
}

type ReservationForm struct {
	Name                    string `json:"name"`
	NamePlaceholder         string `json:"namePlaceholder"`
	Phone                   string `json:"phone"`
	PhonePlaceholder        string `json:"phonePlaceholder"`
	Date                    string `json:"date"`
	Time                    string `json:"time"`
	SelectTime              string `json:"selectTime"`
	Guests                  string `json:"guests"`
	Person                  string `json:"person"`
	People                  string `json:"people"`
	Observations            string `json:"observations"`
	ObservationsPlaceholder string `json:"observationsPlaceholder"`
	Submit                  string `json:"submit"`
	Submitting              string `json:"submitting"`
	CallNow                 string `json:"callNow"`
	WhatsApp                string `json:"whatsapp"`
}

// ReservationValidation holds one message per validation code.
type ReservationValidation struct {
	Required    string `json:"required"`
	PastDate    string `json:"pastDate"`
	InvalidDate string `json:"invalidDate"`
	MinGuests   string `json:"minGuests"`
}

type ReservationSuccess struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Close   string `json:"close"`
}

type ReservationError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ReservationPlaceholder holds the words substituted into the WhatsApp
// message for fields the guest has not filled in yet.
type ReservationPlaceholder struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
	Name   string `json:"name"`
}

type Contact struct {
	Title   string         `json:"title"`
	Address ContactAddress `json:"address"`
	Phone   ContactPhone   `json:"phone"`
	Social  ContactSocial  `json:"social"`
	Hours   ContactHours   `json:"hours"`
}

type ContactAddress struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	OpenMaps   string `json:"openMaps"`
	Directions string `json:"directions"`
}

type ContactPhone struct {
	Label       string `json:"label"`
	NetworkInfo string `json:"networkInfo"`
	CallText    string `json:"callText"`
}

type ContactSocial struct {
	Label string `json:"label"`
}

type ContactHours struct {
	Title  string `json:"title"`
	Days   string `json:"days"`
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
	Closed string `json:"closed"`
}

type Intro struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

type NotFound struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Back    string `json:"back"`
}

type Footer struct {
	Tagline string `json:"tagline"`
	Rights  string `json:"rights"`
}

// ValidationMessage returns the localized text for a validation code, or the
// code itself when it is unknown.
func (v ReservationValidation) ValidationMessage(code string) string {
	switch code {
	case "required":
		return v.Required
	case "pastDate":
		return v.PastDate
	case "invalidDate":
		return v.InvalidDate
	case "minGuests":
		return v.MinGuests
	default:
		return code
	}
}
