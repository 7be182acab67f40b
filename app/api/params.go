package api

import (
	"net/http"
	"strconv"
)

// PathID parses the {id} path segment as an unsigned integer.
func PathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
