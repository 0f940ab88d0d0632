package calorie

import "github.com/nhle/kitchen-tracker/internal/model"

// Form is the input buffer behind the "add food" form.
type Form struct {
	Name     string
	Calories string
}

// Submit adds the buffered entry to t. On success the buffer is cleared; on
// a validation error it is left untouched so the user can correct it.
func (f *Form) Submit(t *Tracker) (model.FoodEntry, error) {
	entry, err := t.AddEntry(f.Name, f.Calories)
	if err != nil {
		return model.FoodEntry{}, err
	}
	f.Reset()
	return entry, nil
}

// Reset clears the buffer.
func (f *Form) Reset() {
	*f = Form{}
}
