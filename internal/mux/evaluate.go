package mux

import (
	"net/http"

	"mondaynightpoker-handeval/pkg/deck"
	"mondaynightpoker-handeval/pkg/handrank"
)

type handRequest struct {
	Cards []string `json:"cards"`
	Size  int      `json:"size,omitempty"`
}

func (h handRequest) hand() deck.Hand {
	hand := make(deck.Hand, len(h.Cards))
	for i, c := range h.Cards {
		hand[i] = deck.Card(c)
	}

	return hand
}

type rankResponse struct {
	Category    handrank.Category `json:"category"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Values      []int             `json:"values"`
}

func newRankResponse(r handrank.Rank) rankResponse {
	return rankResponse{
		Category:    r.Category,
		Name:        r.Category.String(),
		Description: r.String(),
		Values:      r.Values,
	}
}

type handResponse struct {
	Cards []string     `json:"cards"`
	Rank  rankResponse `json:"rank"`
}

type cardRanksResponse struct {
	Ranks []int `json:"ranks"`
}

func (m *Mux) postCardRanks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		ranks, err := m.evaluator.CardRanks(req.hand())
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, cardRanksResponse{Ranks: ranks})
	}
}

func (m *Mux) postHandRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		rank, err := m.evaluator.HandRank(req.hand())
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newRankResponse(rank))
	}
}

func (m *Mux) postBestHand() http.HandlerFunc {
	return m.handHandler(func(req handRequest) (deck.Hand, error) {
		size := req.Size
		if size == 0 {
			size = handrank.HandSize
		}

		return m.evaluator.BestHandOfSize(req.hand(), size)
	})
}

func (m *Mux) postBestWildHand() http.HandlerFunc {
	return m.handHandler(func(req handRequest) (deck.Hand, error) {
		return m.evaluator.BestWildHand(req.hand())
	})
}

// handHandler writes the hand picked by best along with its rank
func (m *Mux) handHandler(best func(req handRequest) (deck.Hand, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := best(req)
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		rank, err := m.evaluator.HandRank(hand)
		if err != nil {
			writeEvaluationError(w, r, err)
			return
		}

		hand = hand.Sorted()
		cards := make([]string, len(hand))
		for i, c := range hand {
			cards[i] = c.String()
		}

		logger(r).WithField("hand", hand.String()).Debug("best hand")
		writeJSON(w, http.StatusOK, handResponse{
			Cards: cards,
			Rank:  newRankResponse(rank),
		})
	}
}
