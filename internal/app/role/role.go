package role

// Role — строковый тег роли пользователя. Закрытый набор известных ролей
// плюс catch-all User для всех остальных.
type Role string

const (
	Admin           Role = "admin"
	Manager         Role = "manager"
	Buyer           Role = "buyer"
	Warehouse       Role = "warehouse"
	Designer        Role = "designer"
	Logistics       Role = "logistics"
	CustomerService Role = "customer-service"
	User            Role = "user"
)

var known = map[Role]bool{
	Admin:           true,
	Manager:         true,
	Buyer:           true,
	Warehouse:       true,
	Designer:        true,
	Logistics:       true,
	CustomerService: true,
	User:            true,
}

// Known проверяет, входит ли роль в известный набор
func Known(r Role) bool {
	return known[r]
}

// Normalize валидирует роль на границе (регистрация):
// неизвестные значения заменяются на User
func Normalize(s string) Role {
	r := Role(s)
	if !Known(r) {
		return User
	}
	return r
}
