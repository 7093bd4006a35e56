// Package view рендерит доменные сущности в разметку. Шаблоны встроены
// и идут через html/template, пользовательские поля экранируются
// структурно.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Tixoni/tourportal/internal/authz"
	"github.com/Tixoni/tourportal/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNew паникует на битом наборе шаблонов: шаблоны встроены, сбой
// здесь означает дефект сборки.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) ToursList(tours []domain.Tour, caps authz.Capabilities) (template.HTML, error) {
	return r.fragment("tours_list", TourCards(tours, caps))
}

func (r *Renderer) BookingsList(bookings []domain.Booking) (template.HTML, error) {
	return r.fragment("bookings_list", GroupBookings(bookings))
}

func (r *Renderer) UsersList(users []domain.User, caps authz.Capabilities) (template.HTML, error) {
	return r.fragment("users_list", UserCards(users, caps))
}

// ErrorCard рендерит уведомление об ошибке вместо списка.
func (r *Renderer) ErrorCard(message string) (template.HTML, error) {
	return r.fragment("error_card", message)
}

func (r *Renderer) Page(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
