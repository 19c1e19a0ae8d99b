package db

import (
	"context"
	"fmt"
)

// Schema bootstrap mirrors the create-if-absent behaviour of the store this
// service replaced: tables appear on first boot, reruns are no-ops.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS seating_slots (
	key        TEXT PRIMARY KEY,
	label      TEXT NOT NULL UNIQUE,
	capacity   INTEGER NOT NULL CHECK (capacity > 0),
	booked     INTEGER NOT NULL DEFAULT 0,
	position   INTEGER NOT NULL,
	CHECK (booked >= 0 AND booked <= capacity)
);

CREATE TABLE IF NOT EXISTS rsvps (
	id           UUID PRIMARY KEY,
	category     TEXT NOT NULL,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	phone        TEXT NOT NULL DEFAULT '',
	instagram    TEXT NOT NULL DEFAULT '',
	party_size   INTEGER NOT NULL CHECK (party_size > 0),
	guests       JSONB NOT NULL DEFAULT '[]',
	slot_key     TEXT REFERENCES seating_slots(key),
	note         TEXT NOT NULL DEFAULT '',
	event_tag    TEXT NOT NULL,
	submitted_at TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_rsvps_category_created
	ON rsvps (category, created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS idempotency_keys (
	key              UUID NOT NULL,
	submitter_email  TEXT NOT NULL,
	endpoint         TEXT NOT NULL,
	request_hash     TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'processing',
	result_rsvp_id   UUID,
	expires_at       TIMESTAMPTZ NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (key, submitter_email)
);

CREATE TABLE IF NOT EXISTS notification_jobs (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	kind       TEXT NOT NULL,
	topic      TEXT NOT NULL,
	payload    JSONB NOT NULL,
	run_at     TIMESTAMPTZ NOT NULL,
	attempts   INTEGER NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'pending',
	last_error TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_notification_jobs_pending
	ON notification_jobs (run_at) WHERE status = 'pending';
`

func EnsureSchema(ctx context.Context, conn DBTX) error {
	if _, err := conn.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
