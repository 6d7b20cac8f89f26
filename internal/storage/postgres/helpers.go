package postgres

import (
	"job-board-api/internal/storage"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// jobQuery selects jobs joined with the owning employer's identity and profile.
type jobQuery struct {
	d *entsql.DialectBuilder
	j *entsql.SelectTable
	u *entsql.SelectTable
	p *entsql.SelectTable
}

func newJobQuery() *jobQuery {
	d := entsql.Dialect(dialect.Postgres)
	return &jobQuery{
		d: d,
		j: d.Table("jobs").As("j"),
		u: d.Table("users").As("u"),
		p: d.Table("profiles").As("p"),
	}
}

func (q *jobQuery) columns() []string {
	return []string{
		q.j.C("id"), q.j.C("title"), q.j.C("description"), q.j.C("location"),
		q.j.C("salary_range"), q.j.C("job_type"), q.j.C("requirements"), q.j.C("status"),
		q.j.C("employer_id"), q.j.C("created_at"), q.j.C("updated_at"),
		q.u.C("email"), q.p.C("company_name"), q.p.C("company_description"),
	}
}

func (q *jobQuery) from(sel *entsql.Selector) *entsql.Selector {
	return sel.From(q.j).
		Join(q.u).On(q.j.C("employer_id"), q.u.C("id")).
		LeftJoin(q.p).On(q.j.C("employer_id"), q.p.C("user_id"))
}

// predicates builds a fresh predicate set; predicates must not be shared
// between selectors.
func (q *jobQuery) predicates(f storage.JobFilter) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if f.EmployerID != 0 {
		preds = append(preds, entsql.EQ(q.j.C("employer_id"), f.EmployerID))
	}
	if f.Status != "" {
		preds = append(preds, entsql.EQ(q.j.C("status"), string(f.Status)))
	}
	if f.JobType != "" {
		preds = append(preds, entsql.EQ(q.j.C("job_type"), string(f.JobType)))
	}
	if f.Title != "" {
		preds = append(preds, entsql.ContainsFold(q.j.C("title"), f.Title))
	}
	if f.Location != "" {
		preds = append(preds, entsql.ContainsFold(q.j.C("location"), f.Location))
	}
	return preds
}

// byID builds the single-job lookup.
func (q *jobQuery) byID(id int64) (string, []any) {
	sel := q.from(q.d.Select(q.columns()...)).
		Where(entsql.EQ(q.j.C("id"), id))
	return sel.Query()
}

// list builds the page query ordered newest first with id as tie-break.
func (q *jobQuery) list(f storage.JobFilter, page storage.Page) (string, []any) {
	sel := q.from(q.d.Select(q.columns()...))
	if preds := q.predicates(f); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc(q.j.C("created_at")), entsql.Desc(q.j.C("id"))).
		Limit(page.Limit).
		Offset(page.Offset)
	return sel.Query()
}

// count builds the total for the same filter the page query applies.
func (q *jobQuery) count(f storage.JobFilter) (string, []any) {
	sel := q.d.Select(entsql.Count("*")).From(q.j)
	if preds := q.predicates(f); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	return sel.Query()
}

// applicationQuery selects applications with their job, the job's employer
// profile and the applicant's identity and profile.
type applicationQuery struct {
	d  *entsql.DialectBuilder
	a  *entsql.SelectTable
	j  *entsql.SelectTable
	u  *entsql.SelectTable
	ap *entsql.SelectTable
	ep *entsql.SelectTable
}

func newApplicationQuery() *applicationQuery {
	d := entsql.Dialect(dialect.Postgres)
	return &applicationQuery{
		d:  d,
		a:  d.Table("applications").As("a"),
		j:  d.Table("jobs").As("j"),
		u:  d.Table("users").As("u"),
		ap: d.Table("profiles").As("ap"),
		ep: d.Table("profiles").As("ep"),
	}
}

func (q *applicationQuery) columns() []string {
	return []string{
		q.a.C("id"), q.a.C("job_id"), q.a.C("applicant_id"), q.a.C("cover_letter"),
		q.a.C("status"), q.a.C("created_at"), q.a.C("updated_at"),
		q.j.C("title"), q.j.C("location"), q.j.C("job_type"), q.j.C("status"),
		q.j.C("employer_id"), q.ep.C("company_name"),
		q.u.C("email"), q.ap.C("first_name"), q.ap.C("last_name"), q.ap.C("resume_url"),
	}
}

func (q *applicationQuery) from(sel *entsql.Selector) *entsql.Selector {
	return sel.From(q.a).
		Join(q.j).On(q.a.C("job_id"), q.j.C("id")).
		Join(q.u).On(q.a.C("applicant_id"), q.u.C("id")).
		LeftJoin(q.ap).On(q.a.C("applicant_id"), q.ap.C("user_id")).
		LeftJoin(q.ep).On(q.j.C("employer_id"), q.ep.C("user_id"))
}

func (q *applicationQuery) predicates(f storage.ApplicationFilter) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if f.JobID != 0 {
		preds = append(preds, entsql.EQ(q.a.C("job_id"), f.JobID))
	}
	if f.ApplicantID != 0 {
		preds = append(preds, entsql.EQ(q.a.C("applicant_id"), f.ApplicantID))
	}
	if f.Status != "" {
		preds = append(preds, entsql.EQ(q.a.C("status"), string(f.Status)))
	}
	return preds
}

func (q *applicationQuery) byID(id int64) (string, []any) {
	sel := q.from(q.d.Select(q.columns()...)).
		Where(entsql.EQ(q.a.C("id"), id))
	return sel.Query()
}

func (q *applicationQuery) list(f storage.ApplicationFilter, page storage.Page) (string, []any) {
	sel := q.from(q.d.Select(q.columns()...))
	if preds := q.predicates(f); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc(q.a.C("created_at")), entsql.Desc(q.a.C("id"))).
		Limit(page.Limit).
		Offset(page.Offset)
	return sel.Query()
}

func (q *applicationQuery) count(f storage.ApplicationFilter) (string, []any) {
	sel := q.d.Select(entsql.Count("*")).From(q.a)
	if preds := q.predicates(f); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	return sel.Query()
}
