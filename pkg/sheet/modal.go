package sheet

// Modal is the visibility flag of one modally presented sheet.
//
// A sticky modal cannot be dismissed by the user: Dismiss re-presents it
// immediately. Hide always works, for hosts that tear the modal down.
type Modal struct {
	name    string
	visible bool
	sticky  bool
}

func NewModal(name string, sticky bool) *Modal {
	return &Modal{name: name, sticky: sticky}
}

func (m *Modal) Name() string { return m.name }

func (m *Modal) Visible() bool { return m.visible }

func (m *Modal) Show() { m.visible = true }

func (m *Modal) Hide() { m.visible = false }

// Dismiss handles a user dismissal and reports whether the modal was
// re-presented.
func (m *Modal) Dismiss() bool {
	if m.sticky {
		m.visible = true
		return true
	}
	m.visible = false
	return false
}
