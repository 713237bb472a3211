package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAddCategory
	formEditCategory
	formLogEntry
	formDeleteCategory
)

// formValues carries the raw field strings of whichever modal form is open.
// Fields are parsed only after the form completes, validation happens per
// field while typing.
type formValues struct {
	name    string
	goal    string
	color   string
	minutes string
	date    string
	note    string
	confirm bool
}

func (v formValues) goalMinutes() int {
	n, _ := strconv.Atoi(strings.TrimSpace(v.goal))
	return n
}

func (v formValues) loggedMinutes() int {
	n, _ := strconv.Atoi(strings.TrimSpace(v.minutes))
	return n
}

func newCategoryForm(title string, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily goal (minutes)").
				Value(&vals.goal).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Color (blank picks one)").
				Placeholder("#667eea").
				Value(&vals.color).
				Validate(validateHexColor),
		).Title(title),
	)
}

func newLogForm(category string, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				Value(&vals.minutes).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Date").
				Value(&vals.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Note (optional)").
				Value(&vals.note),
		).Title(fmt.Sprintf("Log time for %s", category)),
	)
}

func newDeleteForm(category string, entries int, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q and its %d entries?", category, entries)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&vals.confirm),
		),
	)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateHexColor(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	bad := errors.New("use #rrggbb or leave blank")
	if len(s) != 7 || s[0] != '#' {
		return bad
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return bad
		}
	}
	return nil
}
