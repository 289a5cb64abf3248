// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertSubmissionQuery_Placeholders(t *testing.T) {
	s := testSubmission()

	pgQuery, args, err := buildInsertSubmissionQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), s)
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "VALUES ($1,$2,$3,$4)")
	require.Len(t, args, 4)
	assert.Equal(t, s.SubmissionID, args[0])
	assert.JSONEq(t, `{"email":"jane@example.com","full_name":"Jane"}`, args[2].(string))

	liteQuery, _, err := buildInsertSubmissionQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), s)
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "VALUES (?,?,?,?)")
}

func Test_buildListSubmissionsQuery_Limit(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	limited, args, err := buildListSubmissionsQuery(b, "signup", 5)
	require.NoError(t, err)
	assert.Equal(t, []any{"signup"}, args)
	assert.True(t, strings.HasSuffix(limited, "LIMIT 5"))

	all, _, err := buildListSubmissionsQuery(b, "signup", 0)
	require.NoError(t, err)
	assert.NotContains(t, all, "LIMIT")
}

func Test_buildSelectSubmissionQuery(t *testing.T) {
	query, args, err := buildSelectSubmissionQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "abc")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from submissions")
	assert.Contains(t, q, "submission_id = $1")
	assert.Equal(t, []any{"abc"}, args)
}
