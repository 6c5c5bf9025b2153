package apihelp

import (
	"testing"

	"go.uber.org/zap"
)

type User struct {
	First string
	Last  string
}

func (u User) FullName() string { return u.First + " " + u.Last }

func (u *User) Rename(first, last string) {
	u.First = first
	u.Last = last
}

func (User) HelpClassFuncs() map[string]any {
	return map[string]any{
		"Find":      FindUser,
		"TableName": "users",
	}
}

func FindUser(id int) *User { return &User{} }

type Order struct {
	Amount int
}

func (o *Order) Total() int { return o.Amount }

func (o *Order) Totalize(extras ...int) int {
	sum := o.Amount
	for _, e := range extras {
		sum += e
	}
	return sum
}

type RushOrder struct {
	Order
	Fee int
}

type Timestamps struct{}

func (Timestamps) Touch() {}

type Auditable interface {
	AuditTrail() []string
}

type Account struct {
	Timestamps
	Auditable
	Name string
}

func (Account) HelpRelations() []RelationDescriptor {
	return []RelationDescriptor{
		{Name: "users", Kind: "has_many", Target: "User"},
		{Name: "owner", Kind: "belongs_to", Target: "User"},
	}
}

func (Account) HelpScopes() []ScopeDescriptor {
	return []ScopeDescriptor{
		{Name: "by_region", Parameters: []string{"region"}},
		{Name: "active"},
	}
}

type Widget struct{}

func newTestHelp(t *testing.T, opts ...Option) *Help {
	t.Helper()
	base := []Option{WithEnvironment(Test), WithLogger(zap.NewNop())}
	return New(append(base, opts...)...)
}
