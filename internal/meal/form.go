package meal

import "github.com/nhle/kitchen-tracker/internal/model"

// Form is the input buffer behind the "plan a day" form.
type Form struct {
	Day string
}

// Submit creates a plan for the selected day, clearing the selection only on
// success.
func (f *Form) Submit(p *Planner) (model.MealPlan, error) {
	plan, err := p.AddPlan(f.Day)
	if err != nil {
		return model.MealPlan{}, err
	}
	f.Day = ""
	return plan, nil
}
