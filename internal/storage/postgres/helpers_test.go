package postgres

import (
	"testing"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestJobQuery_List(t *testing.T) {
	query, args := newJobQuery().list(storage.JobFilter{
		Status: models.JobStatusActive,
		Title:  "go",
	}, storage.Page{Limit: 10, Offset: 20})

	assert.Contains(t, query, `FROM "jobs" AS "j"`)
	assert.Contains(t, query, `JOIN "users" AS "u" ON "j"."employer_id" = "u"."id"`)
	assert.Contains(t, query, `LEFT JOIN "profiles" AS "p" ON "j"."employer_id" = "p"."user_id"`)
	assert.Contains(t, query, `"j"."status" = $1`)
	assert.Contains(t, query, `ILIKE $2`)
	assert.Contains(t, query, `ORDER BY "j"."created_at" DESC, "j"."id" DESC`)
	assert.Contains(t, query, `LIMIT 10`)
	assert.Contains(t, query, `OFFSET 20`)
	assert.Equal(t, []any{"active", "%go%"}, args)
}

func TestJobQuery_CountMatchesListFilter(t *testing.T) {
	filter := storage.JobFilter{EmployerID: 7, JobType: models.JobTypeContract}
	q := newJobQuery()

	countSQL, countArgs := q.count(filter)
	_, listArgs := q.list(filter, storage.Page{Limit: 5})

	assert.Contains(t, countSQL, `SELECT COUNT(*) FROM "jobs" AS "j"`)
	assert.NotContains(t, countSQL, "JOIN")
	assert.Equal(t, listArgs, countArgs)
	assert.Equal(t, []any{int64(7), "contract"}, countArgs)
}

func TestJobQuery_NoFilter(t *testing.T) {
	query, args := newJobQuery().count(storage.JobFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestApplicationQuery(t *testing.T) {
	q := newApplicationQuery()

	query, args := q.byID(3)
	assert.Contains(t, query, `FROM "applications" AS "a"`)
	assert.Contains(t, query, `LEFT JOIN "profiles" AS "ap" ON "a"."applicant_id" = "ap"."user_id"`)
	assert.Contains(t, query, `LEFT JOIN "profiles" AS "ep" ON "j"."employer_id" = "ep"."user_id"`)
	assert.Equal(t, []any{int64(3)}, args)

	query, args = q.list(storage.ApplicationFilter{JobID: 9, Status: models.ApplicationStatusReviewed}, storage.Page{Limit: 10})
	assert.Contains(t, query, `"a"."job_id" = $1`)
	assert.Contains(t, query, `"a"."status" = $2`)
	assert.Contains(t, query, `ORDER BY "a"."created_at" DESC, "a"."id" DESC`)
	assert.Equal(t, []any{int64(9), "reviewed"}, args)
}
