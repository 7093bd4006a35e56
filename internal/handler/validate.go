package handler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
	minNameLen     = 2
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func credentialsFromForm(c *ginext.Context) (username, password string) {
	return strings.TrimSpace(c.PostForm("username")), c.PostForm("password")
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: fill in all fields", domain.ErrValidation)
	}
	if len(username) < minUsernameLen {
		return fmt.Errorf("%w: username must be at least %d characters", domain.ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	return nil
}

func registrationFromForm(c *ginext.Context) (domain.RegisterInput, error) {
	username, password := credentialsFromForm(c)
	email := strings.TrimSpace(c.PostForm("email"))
	name := strings.TrimSpace(c.PostForm("name"))
	phone := strings.TrimSpace(c.PostForm("phone"))

	if email == "" || name == "" {
		return domain.RegisterInput{}, fmt.Errorf("%w: fill in all required fields", domain.ErrValidation)
	}
	if err := validateCredentials(username, password); err != nil {
		return domain.RegisterInput{}, err
	}
	if !emailPattern.MatchString(email) {
		return domain.RegisterInput{}, fmt.Errorf("%w: enter a valid email", domain.ErrValidation)
	}
	if len(name) < minNameLen {
		return domain.RegisterInput{}, fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, minNameLen)
	}

	input := domain.RegisterInput{
		Username: username,
		Password: password,
		Email:    email,
		Name:     name,
	}
	if phone != "" {
		input.Phone = &phone
	}
	return input, nil
}

func tourFromForm(c *ginext.Context) (domain.TourInput, error) {
	title := strings.TrimSpace(c.PostForm("title"))
	destination := strings.TrimSpace(c.PostForm("destination"))
	if title == "" || destination == "" {
		return domain.TourInput{}, fmt.Errorf("%w: title and destination are required", domain.ErrValidation)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil || price < 0 {
		return domain.TourInput{}, fmt.Errorf("%w: price must be a non-negative number", domain.ErrValidation)
	}

	days, err := strconv.Atoi(strings.TrimSpace(c.PostForm("duration_days")))
	if err != nil || days < 1 {
		return domain.TourInput{}, fmt.Errorf("%w: duration must be at least one day", domain.ErrValidation)
	}

	input := domain.TourInput{
		Title:        title,
		Destination:  destination,
		Price:        price,
		DurationDays: days,
		Available:    true,
	}

	if description := strings.TrimSpace(c.PostForm("description")); description != "" {
		input.Description = &description
	}
	for _, f := range strings.Split(c.PostForm("features"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			input.Features = append(input.Features, f)
		}
	}

	return input, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", domain.ErrValidation)
	}
	return id, nil
}
