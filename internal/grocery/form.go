package grocery

import "github.com/nhle/kitchen-tracker/internal/model"

// Form is the input buffer behind the "add item" form.
type Form struct {
	Name     string
	Quantity string
}

// Submit adds the buffered item to l, clearing the buffer only on success.
func (f *Form) Submit(l *List) (model.GroceryItem, error) {
	item, err := l.AddItem(f.Name, f.Quantity)
	if err != nil {
		return model.GroceryItem{}, err
	}
	*f = Form{}
	return item, nil
}
