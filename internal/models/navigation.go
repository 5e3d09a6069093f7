package models

// Screen identifies a navigable view.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenRegister       Screen = "register"
	ScreenForgotPassword Screen = "forgotPassword"
	ScreenSubjects       Screen = "subjects"
	ScreenMaterials      Screen = "materials"
	ScreenUpload         Screen = "upload"
	ScreenProfile        Screen = "profile"
)

// Screens lists every screen in declaration order.
var Screens = []Screen{
	ScreenLogin, ScreenRegister, ScreenForgotPassword,
	ScreenSubjects, ScreenMaterials, ScreenUpload, ScreenProfile,
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}

// RequiresUser reports whether s is only reachable after login.
func (s Screen) RequiresUser() bool {
	switch s {
	case ScreenLogin, ScreenRegister, ScreenForgotPassword:
		return false
	default:
		return s.Valid()
	}
}

// NavigationState is the value snapshot of the navigation machine.
type NavigationState struct {
	Screen            Screen `json:"screen"`
	User              *User  `json:"user,omitempty"`
	SelectedSubjectID string `json:"selected_subject_id,omitempty"`
}

// Authenticated reports whether a placeholder user is set.
func (s NavigationState) Authenticated() bool {
	return s.User != nil
}

// Clone returns a copy that shares no pointers with s.
func (s NavigationState) Clone() NavigationState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
