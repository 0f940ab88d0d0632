package pantry

import "github.com/nhle/kitchen-tracker/internal/model"

// Form is the input buffer behind the "add pantry item" form.
type Form struct {
	Name       string
	Category   string
	Expiration string
	Quantity   string
}

// Submit adds the buffered item to t, clearing the buffer only on success.
func (f *Form) Submit(t *Tracker) (model.PantryItem, error) {
	item, err := t.AddItem(f.Name, f.Category, f.Expiration, f.Quantity)
	if err != nil {
		return model.PantryItem{}, err
	}
	*f = Form{}
	return item, nil
}
