package entity

// Role represents a user variant in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDClient       = 1
	RoleIDProfessional = 2
)

// RoleNames constants
const (
	RoleClient       = "cliente"
	RoleProfessional = "profesional"
)

// RoleNameForID maps a seeded role id to its name. Unknown ids map to "".
func RoleNameForID(id int) string {
	switch id {
	case RoleIDClient:
		return RoleClient
	case RoleIDProfessional:
		return RoleProfessional
	default:
		return ""
	}
}
