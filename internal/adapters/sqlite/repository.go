package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/csg33k/employee-admin/internal/domain"
)

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database. Schema migrations are managed by dbmate;
// run `dbmate up` before starting the fake API.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

const employeeColumns = `
	id, full_name, picture, job, salary, status, contract_date,
	beneficiary_full_name, beneficiary_relationship,
	beneficiary_birthday, beneficiary_gender`

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*domain.Employee, error) {
	var (
		e      domain.Employee
		id     int64
		gender string
	)
	if err := s.Scan(
		&id, &e.FullName, &e.Picture, &e.Job, &e.Salary, &e.Status, &e.ContractDate,
		&e.Beneficiary.FullName, &e.Beneficiary.Relationship,
		&e.Beneficiary.Birthday, &gender,
	); err != nil {
		return nil, err
	}
	e.ID = domain.ID(strconv.FormatInt(id, 10))
	e.Beneficiary.Gender = domain.Gender(gender)
	return &e, nil
}

// rowID maps an opaque id onto the integer key. Ids that are not integers
// cannot exist in this store.
func rowID(id domain.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	defer rows.Close()
	list := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan employee")
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *Repository) GetEmployee(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	n, err := rowID(id)
	if err != nil {
		return nil, err
	}
	e, err := scanEmployee(r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id=?`, n))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get employee %s", id)
	}
	return e, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (
			full_name, picture, job, salary, status, contract_date,
			beneficiary_full_name, beneficiary_relationship,
			beneficiary_birthday, beneficiary_gender,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		in.FullName, in.Picture, in.Job, in.Salary, in.Status, in.ContractDate,
		in.Beneficiary.FullName, in.Beneficiary.Relationship,
		in.Beneficiary.Birthday, string(in.Beneficiary.Gender),
		now, now,
	)
	if err != nil {
		return nil, errors.Wrap(err, "insert employee")
	}
	id, err := insertedID(res)
	if err != nil {
		return nil, err
	}
	return &domain.Employee{ID: id, EmployeeInput: in}, nil
}

// UpdateEmployee replaces every field, beneficiary included.
func (r *Repository) UpdateEmployee(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error) {
	n, err := rowID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET full_name=?, picture=?, job=?, salary=?, status=?, contract_date=?,
		    beneficiary_full_name=?, beneficiary_relationship=?,
		    beneficiary_birthday=?, beneficiary_gender=?,
		    updated_at=?
		WHERE id=?`,
		in.FullName, in.Picture, in.Job, in.Salary, in.Status, in.ContractDate,
		in.Beneficiary.FullName, in.Beneficiary.Relationship,
		in.Beneficiary.Birthday, string(in.Beneficiary.Gender),
		time.Now(), n,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "update employee %s", id)
	}
	if err := touchedRow(res, id); err != nil {
		return nil, err
	}
	return &domain.Employee{ID: id, EmployeeInput: in}, nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id domain.ID) error {
	n, err := rowID(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, n)
	if err != nil {
		return errors.Wrapf(err, "delete employee %s", id)
	}
	return touchedRow(res, id)
}

func insertedID(res sql.Result) (domain.ID, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return "", errors.Wrap(err, "read inserted employee id")
	}
	return domain.ID(strconv.FormatInt(id, 10)), nil
}

// touchedRow reports ErrNotFound when the statement matched no row.
func touchedRow(res sql.Result, id domain.ID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "rows affected for employee %s", id)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
