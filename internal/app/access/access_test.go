package access

import (
	"testing"

	"portal/internal/app/role"
)

func TestIsVisible_AdminBypass(t *testing.T) {
	policies := []string{"", "all", "manager", "buyer,logistics", ",", "   ", "nobody"}
	for _, p := range policies {
		if !IsVisible(p, role.Admin) {
			t.Errorf("IsVisible(%q, admin) = false, админ должен видеть всё", p)
		}
	}
}

func TestIsVisible_OpenPolicies(t *testing.T) {
	roles := []role.Role{role.Manager, role.Buyer, role.Warehouse, role.User, "ghost"}
	for _, p := range []string{"", "all"} {
		for _, r := range roles {
			if !IsVisible(p, r) {
				t.Errorf("IsVisible(%q, %q) = false, открытая политика должна пропускать всех", p, r)
			}
		}
	}
}

func TestIsVisible_TokenMatch(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		role    role.Role
		visible bool
	}{
		{"роль в списке", "manager,admin", role.Manager, true},
		{"роль не в списке", "manager,admin", role.Buyer, false},
		{"пробелы вокруг токенов", "manager, admin", role.Manager, true},
		{"пробелы с обеих сторон", " logistics , admin ", role.Logistics, true},
		{"одна роль", "buyer", role.Buyer, true},
		{"точное совпадение, не префикс", "management", role.Manager, false},
		{"регистр имеет значение", "Manager", role.Manager, false},
		{"all не срабатывает внутри списка как wildcard", "all,manager", role.Buyer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.policy, tt.role); got != tt.visible {
				t.Errorf("IsVisible(%q, %q) = %v, want %v", tt.policy, tt.role, got, tt.visible)
			}
		})
	}
}

func TestIsVisible_MalformedPolicies(t *testing.T) {
	// пустые сегменты никогда не совпадают: "," доступна только админам
	tests := []struct {
		policy string
		role   role.Role
	}{
		{",", role.Manager},
		{",,", role.Buyer},
		{"   ", role.User},
		{"manager,", role.Buyer},
		{", ,", role.Warehouse},
	}
	for _, tt := range tests {
		if IsVisible(tt.policy, tt.role) {
			t.Errorf("IsVisible(%q, %q) = true, пустые токены не должны совпадать", tt.policy, tt.role)
		}
	}

	// но валидный токен рядом с мусором всё ещё работает
	if !IsVisible("manager,", role.Manager) {
		t.Error("IsVisible(\"manager,\", manager) = false, хвостовая запятая не должна ломать разбор")
	}
}
