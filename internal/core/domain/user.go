package domain

import "github.com/google/uuid"

const (
	RoleClient = "client"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)

// Claims - данные пользователя из JWT
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// IsElevated - агент или администратор
func (c *Claims) IsElevated() bool {
	return c != nil && (c.Role == RoleAdmin || c.Role == RoleAgent)
}

// CanManage - владелец объявления или администратор
func (c *Claims) CanManage(l *Listing) bool {
	if c == nil || l == nil {
		return false
	}
	return c.IsAdmin() || (c.IsElevated() && l.OwnerID == c.UserID)
}

// Access - уровень видимости для поиска.
// Скрытые объявления показываются только при Elevated и явном IncludeHidden.
type Access struct {
	Elevated      bool
	IncludeHidden bool
}

// AccessFor собирает Access из claims и явного запроса на показ скрытых
func AccessFor(claims *Claims, includeHidden bool) Access {
	return Access{
		Elevated:      claims.IsElevated(),
		IncludeHidden: includeHidden,
	}
}

func (a Access) SeesHidden() bool {
	return a.Elevated && a.IncludeHidden
}
