package handler

import (
	"net/http"
	"strconv"

	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/errors"
	"github.com/itchan-dev/bulletin/shared/logger"
	"github.com/itchan-dev/bulletin/shared/utils"
)

const forbiddenMessage = "You do not have permission to perform this action."

func forbidden(w http.ResponseWriter) {
	writeJSONStatus(w, http.StatusForbidden, api.MessageResponse{Message: forbiddenMessage})
}

// writeDeleteError keeps known statuses and hides everything else behind a 400.
func writeDeleteError(w http.ResponseWriter, err error, attrs ...any) {
	if errors.StatusCode(err) != 0 {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	logger.Log.Error("delete failed", append(attrs, "error", err)...)
	http.Error(w, "some error occurred, please try again later.", http.StatusBadRequest)
}

// threadIdFrom reads thread_id from the query string, falling back to a JSON body.
func threadIdFrom(r *http.Request) (domain.ThreadId, error) {
	if id := r.URL.Query().Get("thread_id"); id != "" {
		return id, nil
	}
	var body api.ThreadIdRequest
	if r.Body != nil && r.Body != http.NoBody {
		if err := utils.Decode(r.Body, &body); err != nil {
			return "", err
		}
	}
	if body.ThreadId == "" {
		return "", errors.BadRequest("thread id is missing")
	}
	return body.ThreadId, nil
}

func parseIdParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, errors.BadRequest("invalid " + paramName + ": must be an integer")
	}
	return val, nil
}
