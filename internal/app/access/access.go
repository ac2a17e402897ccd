package access

import (
	"strings"

	"portal/internal/app/role"
)

// IsVisible решает, виден ли ресурс (категория или бизнес-процесс)
// пользователю с ролью requesterRole по политике allowedRoles.
//
// Правила:
//   - админ видит всё;
//   - пустая политика или "all" — доступно всем;
//   - иначе allowedRoles разбирается как список ролей через запятую,
//     каждый токен обрезается, совпадение строгое.
//
// Пустые токены (например политика ",") никогда не совпадают, поэтому
// такой ресурс доступен только админам.
func IsVisible(allowedRoles string, requesterRole role.Role) bool {
	if requesterRole == role.Admin {
		return true
	}
	if allowedRoles == "" || allowedRoles == "all" {
		return true
	}

	for _, token := range strings.Split(allowedRoles, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == string(requesterRole) {
			return true
		}
	}
	return false
}
