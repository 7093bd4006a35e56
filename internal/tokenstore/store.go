package tokenstore

// Store хранит bearer-токен. Содержимое токена здесь не проверяется,
// его валидность знает только сервер.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// AuthHeader собирает заголовок авторизации, пустая map при пустом токене.
func AuthHeader(token string) map[string]string {
	if token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
