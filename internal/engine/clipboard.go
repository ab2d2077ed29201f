package engine

// copySelections returns the selected text, or false when nothing is
// selected.
func (s *State[B]) copySelections() (string, bool) {
	if !s.cursors.HasSelection() {
		return "", false
	}
	return s.SelectedText(), true
}

// cut copies the selected text and removes every selection.
func (s *State[B]) cut() (string, bool) {
	text, ok := s.copySelections()
	if !ok {
		return "", false
	}
	var plans []plan
	for i := 0; i < s.cursors.Len(); i++ {
		sel := s.cursors.Selection(i)
		if sel.IsEmpty() {
			continue
		}
		plans = append(plans, collapsedPlan(i, sel.Range(s.buf), ""))
	}
	s.applyPlans(plans)
	return text, true
}
