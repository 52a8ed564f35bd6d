package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema holds the four gymload tables. The compound unique indexes on prs and
// main_exercises are what keep one PR per (user, exercise, reps) and one main
// exercise per (user, name) under concurrent writers.
const Schema = `
CREATE TABLE IF NOT EXISTS users
(
    id            SERIAL PRIMARY KEY,
    username      TEXT        NOT NULL UNIQUE,
    password_hash TEXT        NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sets
(
    id       SERIAL PRIMARY KEY,
    user_id  INTEGER          NOT NULL REFERENCES users (id),
    exercise TEXT             NOT NULL,
    weight   DOUBLE PRECISION NOT NULL CHECK (weight > 0),
    reps     INTEGER          NOT NULL CHECK (reps > 0),
    rpe      DOUBLE PRECISION,
    date     TIMESTAMPTZ      NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_sets_user_date ON sets (user_id, date DESC);

CREATE TABLE IF NOT EXISTS prs
(
    id       SERIAL PRIMARY KEY,
    user_id  INTEGER          NOT NULL REFERENCES users (id),
    exercise TEXT             NOT NULL,
    reps     INTEGER          NOT NULL CHECK (reps > 0),
    weight   DOUBLE PRECISION NOT NULL CHECK (weight > 0),
    date     TIMESTAMPTZ      NOT NULL,
    CONSTRAINT ux_prs_user_exercise_reps UNIQUE (user_id, exercise, reps)
);

CREATE TABLE IF NOT EXISTS main_exercises
(
    id           SERIAL PRIMARY KEY,
    user_id      INTEGER NOT NULL REFERENCES users (id),
    name         TEXT    NOT NULL,
    typical_reps TEXT    NOT NULL,
    CONSTRAINT ux_main_exercises_user_name UNIQUE (user_id, name)
);
`

// Migrate ensures tables exist. Safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
