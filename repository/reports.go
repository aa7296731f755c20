package repository

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// ReportStoreMysql provisions the relational reporting tables. They are
// written by an external batch job, not by any request handler here;
// the API only guarantees the schema exists.
type ReportStoreMysql struct {
	db *sql.DB
}

func NewReportStoreMysql(dsn string) (*ReportStoreMysql, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(time.Minute * 5)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	return &ReportStoreMysql{db: db}, nil
}

const createMonthlyReports = `CREATE TABLE IF NOT EXISTS monthly_reports (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id VARCHAR(50) NOT NULL,
	month INT NOT NULL,
	year INT NOT NULL,
	total_spent DECIMAL(10,2) NOT NULL,
	top_category VARCHAR(100),
	overbudget_categories JSON,
	category_breakdown JSON,
	payment_method_stats JSON,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uq_user_month_year (user_id, month, year)
)`

const createUserSummaries = `CREATE TABLE IF NOT EXISTS user_summaries (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id VARCHAR(50) NOT NULL,
	total_lifetime_spent DECIMAL(12,2) DEFAULT 0,
	most_used_category VARCHAR(100),
	most_used_payment_method VARCHAR(100),
	last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uq_user (user_id)
)`

func (r *ReportStoreMysql) InitSchema(ctx context.Context) error {
	for _, statement := range []string{createMonthlyReports, createUserSummaries} {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReportStoreMysql) Close() error {
	return r.db.Close()
}
