package ui

import (
	"errors"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// FormWidth clamps a huh form's width to the content area.
func FormWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

// FormHeight clamps a huh form's height to the content area.
func FormHeight(height int) int {
	h := height - 4
	if h < 10 {
		h = 10
	}
	return h
}

// AlertText returns the title and message the validation alert shows for err.
func AlertText(err error) (string, string) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return "Error", ve.Message
	}
	return "Error", err.Error()
}
