package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychtest/psyquiz/internal/config"
	"github.com/psychtest/psyquiz/internal/pool"
	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/sampler"
)

func newPlainSession(t *testing.T) *quiz.Session {
	t.Helper()
	cfg := config.DefaultConfig()
	sess, err := quiz.New(cfg, pool.New(cfg.PoolSize), quiz.Options{Source: sampler.Seeded(3)})
	require.NoError(t, err)
	return sess
}

func TestPlayPlain_RepromptsAndScores(t *testing.T) {
	sess := newPlainSession(t)
	var out bytes.Buffer

	in := strings.NewReader("3\n3\nx\n7\n3\n0\n0\nq\n")
	require.NoError(t, playPlain(sess, in, &out))

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Please enter 0, 1, 2 or 3."))
	assert.Contains(t, got, "score: 9/15 (Medium)")
	assert.Contains(t, got, "1. Question ")
	assert.Contains(t, got, "3 = very true")
	assert.Equal(t, quiz.StateCompleted, sess.State())
}

func TestPlayPlain_ResetKeepsSet(t *testing.T) {
	sess := newPlainSession(t)
	set := sess.Set()
	var out bytes.Buffer

	in := strings.NewReader("3\n3\n3\n3\n3\nr\n1\n1\n1\n1\n1\nq\n")
	require.NoError(t, playPlain(sess, in, &out))

	got := out.String()
	assert.Contains(t, got, "score: 15/15 (High)")
	assert.Contains(t, got, "score: 5/15 (Medium)")
	assert.Equal(t, set, sess.Set())
}

func TestPlayPlain_Reshuffle(t *testing.T) {
	sess := newPlainSession(t)
	drawID := sess.DrawID()
	var out bytes.Buffer

	in := strings.NewReader("0\n0\n0\n0\n0\nn\n0\n0\n0\n0\n0\nq\n")
	require.NoError(t, playPlain(sess, in, &out))

	assert.Equal(t, 2, strings.Count(out.String(), "score: 0/15 (Low)"))
	assert.NotEqual(t, drawID, sess.DrawID())
}

func TestPlayPlain_InputClosed(t *testing.T) {
	sess := newPlainSession(t)
	var out bytes.Buffer

	require.NoError(t, playPlain(sess, strings.NewReader("2\n"), &out))
	assert.Contains(t, out.String(), "(input closed)")
	assert.NotContains(t, out.String(), "score:")
	assert.Equal(t, quiz.StatePartiallyAnswered, sess.State())
}

func TestParseValue(t *testing.T) {
	for _, s := range []string{"0", "1", "2", "3"} {
		_, err := parseValue(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"", "-1", "4", "two", "1.5"} {
		_, err := parseValue(s)
		assert.Error(t, err, s)
	}
}
