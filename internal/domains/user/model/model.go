package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldUsername       = "username"
	FieldHashedPassword = "hashed_password"
)

type User struct {
	ID             int64  `db:"id"              readonly:"true"`
	Username       string `db:"username"`
	HashedPassword string `db:"hashed_password"`
}
