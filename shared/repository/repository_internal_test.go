package repository

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type embeddedAudit struct {
	CreatedBy string `db:"created_by"`
}

type sampleEntity struct {
	ID      int64  `db:"id"      readonly:"true"`
	Content string `db:"content"`
	IsDone  bool   `db:"is_done"`
	Skipped string `db:"-"`
	NoTag   string
	embeddedAudit
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns(reflect.TypeOf(sampleEntity{}))

	assert.Equal(t, []string{"id", "content", "is_done", "created_by"}, columns)
	assert.Equal(t, []string{"content", "is_done", "created_by"}, insertColumns)
}

func TestInsertQuery(t *testing.T) {
	repo := NewRepository[sampleEntity]("sample", "samples", "id", nil, nil)

	assert.Equal(t,
		"INSERT INTO samples (content, is_done, created_by) VALUES (:content, :is_done, :created_by) RETURNING id, content, is_done, created_by",
		repo.insertQuery(),
	)
}

func TestSelectAllQuery(t *testing.T) {
	repo := NewRepository[sampleEntity]("sample", "samples", "id", nil, nil)

	t.Run("without where clause", func(t *testing.T) {
		assert.Equal(t,
			"SELECT samples.id, samples.content, samples.is_done, samples.created_by FROM samples ORDER BY samples.id ASC",
			repo.selectAllQuery(""),
		)
	})

	t.Run("with where clause", func(t *testing.T) {
		assert.Equal(t,
			"SELECT samples.id, samples.content, samples.is_done, samples.created_by FROM samples WHERE is_done = :is_done ORDER BY samples.id ASC",
			repo.selectAllQuery("WHERE is_done = :is_done"),
		)
	})
}

func TestUpdateQuery(t *testing.T) {
	repo := NewRepository[sampleEntity]("sample", "samples", "id", nil, nil)

	query := repo.updateQuery(map[string]any{"is_done": true, "content": "x"}, "WHERE samples.id = :samples_id")

	assert.Equal(t, "UPDATE samples SET content = :set_content, is_done = :set_is_done WHERE samples.id = :samples_id", query)
}
