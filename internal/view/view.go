// Package view renders the site pages from embedded html/template files.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"latina/internal/catalog"
	"latina/internal/domains/reservation/form"
	"latina/shared/constant"
	"latina/shared/locale"
)

type Name string

const (
	Home         Name = "home"
	Menu         Name = "menu"
	Reservations Name = "reservations"
	Contact      Name = "contact"
	NotFound     Name = "notfound"
)

// Names lists every page template.
func Names() []Name {
	return []Name{Home, Menu, Reservations, Contact, NotFound}
}

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var layout = []string{"templates/layout.html"}

// Page is what every template renders from.
type Page struct {
	Locale     locale.Locale
	Route      string
	Messages   *catalog.Messages
	Meta       catalog.PageMeta
	Alternates []Alternate
	Intro      Intro
	Contact    ContactInfo
	Year       int
	Form       *Form
}

// Alternate is the same route in another language.
type Alternate struct {
	Locale  locale.Locale
	Label   string
	Href    string
	Current bool
}

type Intro struct {
	Show        bool
	DelayMillis int
}

// CallLink fields are template.URL because html/template rejects the tel:
// scheme in plain strings.
type ContactInfo struct {
	Phone        string
	CallLink     template.URL
	WhatsAppLink string
	Instagram    string
	Address      string
	MapsLink     string
}

// Form is the reservation form as the guest last left it.
type Form struct {
	Values         form.Values
	Errors         map[form.Field]string
	Slots          []string
	MinDate        string
	Acknowledgment *form.Acknowledgment
	Failed         bool
	WhatsAppLink   string
	CallLink       template.URL
}

// Error returns the message for field, or "" when the field is valid.
func (f *Form) Error(field string) string {
	return f.Errors[form.Field(field)]
}

type Renderer struct {
	pages map[Name]*template.Template
}

var funcs = template.FuncMap{
	"href": func(loc locale.Locale, route string) string {
		return "/" + loc.String() + route
	},
	"lang": func(loc locale.Locale) string {
		return loc.Tag().String()
	},
	"seq": func(from, to int) []int {
		if to < from {
			return nil
		}

		out := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			out = append(out, i)
		}

		return out
	},
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[Name]*template.Template, len(Names()))}

	for _, name := range Names() {
		files := append(append([]string{}, layout...), "templates/"+string(name)+".html")

		tmpl, err := template.New(string(name)).Funcs(funcs).ParseFS(templates, files...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}

		renderer.pages[name] = tmpl
	}

	return renderer, nil
}

func MustNew() *Renderer {
	renderer, err := New()
	if err != nil {
		panic(err)
	}

	return renderer
}

// Render writes page name with status. Output is buffered so a template
// error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name Name, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// Static serves the embedded assets. Mount it with the /static prefix
// stripped.
func Static() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
