package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mondaynightpoker-handeval/pkg/handrank"
)

func TestMux_postBestHand(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var resp handResponse
	assertPost(t, ts, "/best-hand", handRequest{Cards: []string{"TD", "TC", "TH", "7C", "7D", "8C", "8S"}}, &resp, http.StatusOK)
	assert.Equal(t, []string{"TC", "TD", "TH", "8C", "8S"}, resp.Cards)
	assert.Equal(t, handrank.FullHouse, resp.Rank.Category)
	assert.Equal(t, "Full house", resp.Rank.Name)
	assert.Equal(t, []int{10, 8}, resp.Rank.Values)

	resp = handResponse{}
	assertPost(t, ts, "/best-hand", handRequest{Cards: []string{"JD", "TC", "TH", "7C", "7D", "7S", "7H"}, Size: 4}, &resp, http.StatusOK)
	assert.Equal(t, []string{"7C", "7D", "7H", "7S"}, resp.Cards)
	assert.Equal(t, handrank.FourOfAKind, resp.Rank.Category)
}

func TestMux_postBestWildHand(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var resp handResponse
	assertPost(t, ts, "/best-wild-hand", handRequest{Cards: []string{"6C", "7C", "8C", "9C", "TC", "5C", "?B"}}, &resp, http.StatusOK)
	assert.Equal(t, []string{"JC", "TC", "9C", "8C", "7C"}, resp.Cards)
	assert.Equal(t, "Straight flush", resp.Rank.Description)
	assert.Equal(t, []int{11}, resp.Rank.Values)
}

func TestMux_postHandRank(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var resp rankResponse
	assertPost(t, ts, "/hand-rank", `{"cards":["TS","JS","QS","KS","AS"]}`, &resp, http.StatusOK)
	assert.Equal(t, handrank.StraightFlush, resp.Category)
	assert.Equal(t, "Royal flush", resp.Description)
}

func TestMux_postCardRanks(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var resp cardRanksResponse
	assertPost(t, ts, "/card-ranks", handRequest{Cards: []string{"6C", "7C", "8C", "9C", "TC", "5C", "JS"}}, &resp, http.StatusOK)
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6, 5}, resp.Ranks)

	// unknown ranks are dropped by default
	resp = cardRanksResponse{}
	assertPost(t, ts, "/card-ranks", handRequest{Cards: []string{"qw", "AS"}}, &resp, http.StatusOK)
	assert.Equal(t, []int{14}, resp.Ranks)
}

func TestMux_badRequests(t *testing.T) {
	ts := newTestServer(handrank.WithRankPolicy(handrank.StrictRanks))
	defer ts.Close()

	var resp errorResponse
	assertPost(t, ts, "/hand-rank", handRequest{Cards: []string{"10H", "JH", "QH", "KH", "AH"}}, &resp, http.StatusBadRequest)
	assert.Equal(t, `invalid card: "10H" in [10H JH QH KH AH]`, resp.Message)

	resp = errorResponse{}
	assertPost(t, ts, "/card-ranks", handRequest{Cards: []string{"qw", "AS"}}, &resp, http.StatusBadRequest)
	assert.Equal(t, `unknown rank: "qw" in [qw AS]`, resp.Message)

	resp = errorResponse{}
	assertPost(t, ts, "/best-hand", handRequest{Cards: []string{"AS", "KS"}}, &resp, http.StatusBadRequest)
	assert.Equal(t, "not enough cards: need 5, have 2", resp.Message)

	resp = errorResponse{}
	assertPost(t, ts, "/best-hand", handRequest{Cards: []string{"AS", "KS"}, Size: -1}, &resp, http.StatusBadRequest)
	assert.Equal(t, "invalid hand size: -1", resp.Message)

	assertPost(t, ts, "/best-hand", `{"cards":`, nil, http.StatusBadRequest)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/best-hand", nil)
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, nil, http.StatusUnsupportedMediaType)
}

func TestMux_requestID(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	const id = "0b4e5b1c-6c8b-4f5e-9a57-2f7f6c3d8a11"
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(RequestIDHeader, id)
	resp := assertDo(t, req, nil, http.StatusOK)
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))

	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp = assertDo(t, req, nil, http.StatusOK)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
}
