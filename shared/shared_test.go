package shared_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tudu/shared"
	"tudu/shared/dto"
	"tudu/shared/failure"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Content  string `db:"content"`
		IsDone   *bool  `db:"is_done"`
		Internal string
		Skipped  string `db:"-"`
	}

	tests := []struct {
		name     string
		input    update
		expected map[string]any
	}{
		{
			name:     "pointer false is kept",
			input:    update{IsDone: boolPtr(false)},
			expected: map[string]any{"is_done": false},
		},
		{
			name:     "pointer true is dereferenced",
			input:    update{IsDone: boolPtr(true)},
			expected: map[string]any{"is_done": true},
		},
		{
			name:     "zero values and untagged fields are dropped",
			input:    update{Content: "Buy milk", Internal: "x", Skipped: "y"},
			expected: map[string]any{"content": "Buy milk"},
		},
		{
			name:     "empty struct",
			input:    update{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.input))
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(5), "id", "todos")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(5), Operator: dto.FilterOperatorEq, Table: "todos"},
		},
	}, group)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(todos.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(5)}, args)
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("username", "alice", "users")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(users.username = :username)", where)
	assert.Equal(t, map[string]any{"username": "alice"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
	assert.Equal(t, "limiter:10.0.0.1:curl/8.0", shared.BuildCacheKey("limiter", "10.0.0.1", "curl/8.0"))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid", raw: "42", want: 42},
		{name: "zero", raw: "0", want: 0},
		{name: "negative", raw: "-3", want: -3},
		{name: "decimal", raw: "1.5", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "overflow", raw: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.raw)

			if tt.wantErr {
				var fail *failure.Failure
				assert.True(t, errors.As(err, &fail))
				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
