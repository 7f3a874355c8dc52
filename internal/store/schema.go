// Package store is the persistence layer over PostgreSQL. Each entity gets
// its own store type sharing one database client.
package store

import (
	"context"
	"fmt"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		partner_one_name TEXT NOT NULL DEFAULT '',
		partner_two_name TEXT NOT NULL DEFAULT '',
		reset_token TEXT,
		reset_token_expiry TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wedding_details (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		partner_one_name TEXT NOT NULL DEFAULT '',
		partner_two_name TEXT NOT NULL DEFAULT '',
		wedding_location TEXT NOT NULL DEFAULT '',
		wedding_date TIMESTAMPTZ,
		guest_count TEXT NOT NULL DEFAULT '',
		budget NUMERIC,
		currency TEXT NOT NULL DEFAULT 'GBP',
		cultural_traditions TEXT[] NOT NULL DEFAULT '{}',
		religious_traditions TEXT[] NOT NULL DEFAULT '{}',
		planned_events TEXT[] NOT NULL DEFAULT '{}',
		wedding_style TEXT NOT NULL DEFAULT '',
		venue_type TEXT NOT NULL DEFAULT '',
		special_requirements TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS budgets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT 'My Wedding Budget',
		total_budget NUMERIC NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'GBP',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS budget_items (
		id TEXT PRIMARY KEY,
		budget_id TEXT NOT NULL REFERENCES budgets(id) ON DELETE CASCADE,
		category TEXT NOT NULL DEFAULT '',
		item TEXT NOT NULL DEFAULT '',
		estimated_cost NUMERIC NOT NULL DEFAULT 0,
		actual_cost NUMERIC,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		priority TEXT NOT NULL DEFAULT 'medium',
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS timelines (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT 'My Wedding Timeline',
		wedding_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS timeline_tasks (
		id TEXT PRIMARY KEY,
		timeline_id TEXT NOT NULL REFERENCES timelines(id) ON DELETE CASCADE,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		due_date TIMESTAMPTZ,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		category TEXT NOT NULL DEFAULT 'Custom',
		priority TEXT NOT NULL DEFAULT 'medium'
	)`,
	`CREATE TABLE IF NOT EXISTS checklists (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS checklist_items (
		id TEXT PRIMARY KEY,
		checklist_id TEXT NOT NULL REFERENCES checklists(id) ON DELETE CASCADE,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		category TEXT NOT NULL DEFAULT '',
		importance TEXT NOT NULL DEFAULT 'medium',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS search_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		location TEXT NOT NULL,
		budget_range TEXT NOT NULL DEFAULT '',
		results_count INTEGER NOT NULL DEFAULT 0,
		cache_used BOOLEAN NOT NULL DEFAULT FALSE,
		searched_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_search_logs_user ON search_logs (user_id, searched_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_checklists_user_category ON checklists (user_id, category)`,
	`CREATE INDEX IF NOT EXISTS idx_timeline_tasks_due ON timeline_tasks (timeline_id, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_users_reset_token ON users (reset_token) WHERE reset_token IS NOT NULL`,
}

// EnsureSchema creates the tables on startup. Statements are idempotent so
// repeated boots are safe.
func EnsureSchema(ctx context.Context, db *database.PostgresClient) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
