package handler

import (
	"net/http"

	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/utils"
)

// BoardTopics groups boards by topic. Mounted behind AdminOnly.
func (h *Handler) BoardTopics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.board.TopicCounts()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.TopicCountResponse, len(counts))
	for i, c := range counts {
		response[i] = api.TopicCountResponse{Topic: c.Topic, Count: c.Count}
	}
	writeJSON(w, response)
}
