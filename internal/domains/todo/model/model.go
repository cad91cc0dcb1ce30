package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID      = "id"
	FieldContent = "content"
	FieldIsDone  = "is_done"
)

type Todo struct {
	ID      int64  `db:"id"      readonly:"true"`
	Content string `db:"content"`
	IsDone  bool   `db:"is_done"`
}
