package domain

type SessionState string

const (
	SessionAnonymous          SessionState = "anonymous"
	SessionResolving          SessionState = "resolving"
	SessionAuthenticated      SessionState = "authenticated"
	SessionAuthenticatedAdmin SessionState = "authenticated_admin"
)

// Session описывает текущего пользователя портала. User не заполняется
// при пустом Token.
type Session struct {
	State SessionState
	Token string
	User  *User
}

func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated || s.State == SessionAuthenticatedAdmin
}

func (s Session) IsAdmin() bool {
	return s.State == SessionAuthenticatedAdmin
}
