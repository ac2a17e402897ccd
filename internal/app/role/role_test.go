package role

import "testing"

func TestKnown(t *testing.T) {
	for _, r := range []Role{Admin, Manager, Buyer, Warehouse, Designer, Logistics, CustomerService, User} {
		if !Known(r) {
			t.Errorf("Known(%q) = false", r)
		}
	}
	for _, r := range []Role{"moderator", "ADMIN", "", "custom"} {
		if Known(r) {
			t.Errorf("Known(%q) = true", r)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("manager"); got != Manager {
		t.Errorf("Normalize(manager) = %q", got)
	}
	// неизвестная роль и пустая строка схлопываются в user
	if got := Normalize("superuser"); got != User {
		t.Errorf("Normalize(superuser) = %q", got)
	}
	if got := Normalize(""); got != User {
		t.Errorf("Normalize(\"\") = %q", got)
	}
}
