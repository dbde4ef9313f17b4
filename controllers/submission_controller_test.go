package controllers_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/kamarini09/ctf-app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const correctFlag = "KCTF{abc_123}"

func seedScoringFixture(t *testing.T) {
	seedChallenge(t, "c1", "warmup", 100, true, correctFlag)
	seedTeam(t, "t1", "alpha", "AAAAAA")
	seedProfile(t, "u1", "alice", strPtr("t1"))
	seedProfile(t, "u2", "bob", strPtr("t1"))
}

func TestSubmitFlagFirstSolveThenTeamIdempotence(t *testing.T) {
	r := setupRouter(t)
	seedScoringFixture(t)

	// Wrong case on the prefix fails the shape check outright.
	w := doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "c1", "flag": "kctf{abc_123}",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, submissionCount(t))

	// First correct solve scores the team.
	w = doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "c1", "flag": "  " + correctFlag + " ",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SubmitFlagResp
	decode(t, w, &resp)
	assert.True(t, resp.OK)
	assert.True(t, resp.Correct)
	assert.False(t, resp.AlreadySolved)
	require.NotNil(t, resp.Points)
	assert.EqualValues(t, 100, *resp.Points)

	// Teammate resubmits the same flag: same team, no second row.
	w = doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u2", "challengeId": "c1", "flag": correctFlag,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.True(t, resp.OK)
	assert.True(t, resp.Correct)
	assert.True(t, resp.AlreadySolved)
	require.NotNil(t, resp.Points)
	assert.EqualValues(t, 100, *resp.Points)

	// The original solver retrying also gets "already solved".
	w = doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "c1", "flag": correctFlag,
	})
	decode(t, w, &resp)
	assert.True(t, resp.AlreadySolved)

	assert.EqualValues(t, 1, submissionCount(t))
}

func TestSubmitFlagConcurrentTeammates(t *testing.T) {
	r := setupRouter(t)
	seedScoringFixture(t)

	const n = 8
	users := []string{"u1", "u2"}

	var wg sync.WaitGroup
	verdicts := make([]dto.SubmitFlagResp, n)
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doJSON(t, r, "POST", "/submissions", map[string]string{
				"userId":      users[i%len(users)],
				"challengeId": "c1",
				"flag":        correctFlag,
			})
			codes[i] = w.Code
			decode(t, w, &verdicts[i])
		}(i)
	}
	wg.Wait()

	firstSolves := 0
	for i := 0; i < n; i++ {
		require.Equal(t, http.StatusOK, codes[i])
		require.True(t, verdicts[i].OK)
		require.True(t, verdicts[i].Correct)
		if !verdicts[i].AlreadySolved {
			firstSolves++
		}
	}
	assert.Equal(t, 1, firstSolves, "exactly one caller may win the first solve")
	assert.EqualValues(t, 1, submissionCount(t))
}

func TestSubmitFlagFormatRejection(t *testing.T) {
	r := setupRouter(t)
	seedScoringFixture(t)

	bad := []string{
		"abc",
		"KCTF{}",
		"KCTF{abc",
		"KCTF abc}",
		"FLAG{abc_123}",
		"kctf{abc_123}",
		"KCTF{abc-123}",
		"KCTF{ab c}",
		"KCTF{" + strings.Repeat("a", 81) + "}",
		"xKCTF{abc_123}",
		"KCTF{abc_123}x",
	}
	for _, flag := range bad {
		w := doJSON(t, r, "POST", "/submissions", map[string]string{
			"userId": "u1", "challengeId": "c1", "flag": flag,
		})
		assert.Equalf(t, http.StatusBadRequest, w.Code, "flag %q must be rejected", flag)
	}

	// Boundary: exactly 80 characters inside the braces is accepted.
	w := doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "c1", "flag": "KCTF{" + strings.Repeat("a", 80) + "}",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SubmitFlagResp
	decode(t, w, &resp)
	assert.True(t, resp.OK)
	assert.False(t, resp.Correct)

	assert.EqualValues(t, 0, submissionCount(t))
}

func TestSubmitFlagRequiresTeam(t *testing.T) {
	r := setupRouter(t)
	seedChallenge(t, "c1", "warmup", 100, true, correctFlag)
	seedProfile(t, "solo", "loner", nil)

	w := doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "solo", "challengeId": "c1", "flag": correctFlag,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.SubmitFlagResp
	decode(t, w, &resp)
	assert.False(t, resp.OK)
	assert.Equal(t, "Join a team first.", resp.Message)
	assert.EqualValues(t, 0, submissionCount(t))
}

func TestSubmitFlagUnknownAndInactiveChallengeLookAlike(t *testing.T) {
	r := setupRouter(t)
	seedChallenge(t, "dead", "retired", 100, false, correctFlag)
	seedTeam(t, "t1", "alpha", "AAAAAA")
	seedProfile(t, "u1", "alice", strPtr("t1"))

	wUnknown := doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "ghost", "flag": correctFlag,
	})
	wInactive := doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "dead", "flag": correctFlag,
	})

	assert.Equal(t, http.StatusNotFound, wUnknown.Code)
	assert.Equal(t, http.StatusNotFound, wInactive.Code)
	// Identical bodies: the endpoint must not reveal which case it was.
	assert.Equal(t, wUnknown.Body.String(), wInactive.Body.String())
	assert.EqualValues(t, 0, submissionCount(t))
}

func TestSubmitFlagWrongGuessHasNoSideEffects(t *testing.T) {
	r := setupRouter(t)
	seedScoringFixture(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, "POST", "/submissions", map[string]string{
			"userId": "u1", "challengeId": "c1", "flag": "KCTF{wrong_guess}",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SubmitFlagResp
		decode(t, w, &resp)
		assert.True(t, resp.OK)
		assert.False(t, resp.Correct)
	}
	assert.EqualValues(t, 0, submissionCount(t))
}

func TestSubmitFlagMissingFields(t *testing.T) {
	r := setupRouter(t)

	cases := []map[string]string{
		{},
		{"userId": "u1"},
		{"userId": "u1", "challengeId": "c1"},
		{"challengeId": "c1", "flag": correctFlag},
	}
	for _, body := range cases {
		w := doJSON(t, r, "POST", "/submissions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.SubmitFlagResp
		decode(t, w, &resp)
		assert.Equal(t, "Missing fields", resp.Message)
	}
}

func TestMySolves(t *testing.T) {
	r := setupRouter(t)
	seedScoringFixture(t)
	seedChallenge(t, "c2", "crypto", 200, true, "KCTF{second_flag}")
	seedProfile(t, "drifter", "nobody", nil)

	// No team (and even no profile) yields an empty list, not an error.
	for _, uid := range []string{"drifter", "ghost"} {
		w := doJSON(t, r, "GET", "/me/solves?userId="+uid, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	}

	doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u1", "challengeId": "c1", "flag": correctFlag,
	})
	doJSON(t, r, "POST", "/submissions", map[string]string{
		"userId": "u2", "challengeId": "c2", "flag": "KCTF{second_flag}",
	})

	// Solves are team-wide: both members see both challenge ids.
	for _, uid := range []string{"u1", "u2"} {
		w := doJSON(t, r, "GET", "/me/solves?userId="+uid, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var ids []string
		decode(t, w, &ids)
		assert.ElementsMatch(t, []string{"c1", "c2"}, ids)
	}

	w := doJSON(t, r, "GET", "/me/solves", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
