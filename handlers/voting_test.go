// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/testutil"
)

func TestCastVoteEndpoint(t *testing.T) {
	conn, mux := setupServer(t)
	alice := testutil.CreateTestUser(t, conn, "alice")
	bob := testutil.CreateTestUser(t, conn, "bob")
	aliceToken := testutil.CreateTestSession(t, conn, alice)
	bobToken := testutil.CreateTestSession(t, conn, bob)

	pollID := testutil.CreateTestPoll(t, conn, alice, "Coffee or tea?", nil)
	coffee := testutil.AddTestOption(t, conn, pollID, "Coffee", 0)
	tea := testutil.AddTestOption(t, conn, pollID, "Tea", 1)

	otherPoll := testutil.CreateTestPoll(t, conn, alice, "Cats or dogs?", nil)
	cats := testutil.AddTestOption(t, conn, otherPoll, "Cats", 0)
	testutil.AddTestOption(t, conn, otherPoll, "Dogs", 1)

	// Voting requires login
	w := serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: coffee}, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Alice votes Coffee
	w = serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: coffee}, authHeader(aliceToken)))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.NewVotes != 1 {
		t.Errorf("Expected success with new_votes 1, got %+v", resp)
	}

	// Second vote by alice fails with a structured payload
	w = serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: tea}, authHeader(aliceToken)))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if !strings.Contains(errResp.Message, "already voted") {
		t.Errorf("Expected already-voted message, got %q", errResp.Message)
	}

	// Counts unchanged by the rejected attempt
	var coffeeVotes, teaVotes int
	if err := conn.QueryRow(`SELECT votes FROM option WHERE id = $1`, coffee).Scan(&coffeeVotes); err != nil {
		t.Fatalf("Failed to query votes: %v", err)
	}
	if err := conn.QueryRow(`SELECT votes FROM option WHERE id = $1`, tea).Scan(&teaVotes); err != nil {
		t.Fatalf("Failed to query votes: %v", err)
	}
	if coffeeVotes != 1 || teaVotes != 0 {
		t.Errorf("Expected counts [1 0], got [%d %d]", coffeeVotes, teaVotes)
	}

	// Option from another poll
	w = serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: cats}, authHeader(bobToken)))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Missing poll
	w = serve(mux, testutil.MakeRequest("POST", "/polls/missing/vote",
		models.CastVoteRequest{OptionID: coffee}, authHeader(bobToken)))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Missing option_id in the body
	w = serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{}, authHeader(bobToken)))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Bob votes Tea
	w = serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: tea}, authHeader(bobToken)))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.NewVotes != 1 {
		t.Errorf("Expected Tea at 1 vote, got %d", resp.NewVotes)
	}
}

func TestCastVoteOnClosedPoll(t *testing.T) {
	conn, mux := setupServer(t)
	alice := testutil.CreateTestUser(t, conn, "alice")
	token := testutil.CreateTestSession(t, conn, alice)

	expired := time.Now().Add(-time.Hour)
	pollID := testutil.CreateTestPoll(t, conn, alice, "Too late", &expired)
	optionID := testutil.AddTestOption(t, conn, pollID, "Yes", 0)
	testutil.AddTestOption(t, conn, pollID, "No", 1)

	w := serve(mux, testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
		models.CastVoteRequest{OptionID: optionID}, authHeader(token)))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if !strings.Contains(errResp.Message, "ended") {
		t.Errorf("Expected poll-ended message, got %q", errResp.Message)
	}

	var votes int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1`, pollID).Scan(&votes); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if votes != 0 {
		t.Errorf("Expected no votes on closed poll, got %d", votes)
	}
}
