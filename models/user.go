package models

type User struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
