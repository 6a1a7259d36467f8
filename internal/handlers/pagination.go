package handlers

import "strconv"

// parsePaginationParams reads page/limit query strings. An absent limit falls
// back to defaultLimit, which callers take from config.AppEnv.DefaultPageSize
// so operators can tune page size without a redeploy.
func parsePaginationParams(pageStr, limitStr string, defaultLimit int64) (int64, int64, error) {
	page := int64(1)
	limit := defaultLimit

	if pageStr != "" {
		p, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil || p < 1 {
			return 0, 0, ValidationError{Msg: "page must be a positive integer"}
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 {
			return 0, 0, ValidationError{Msg: "limit must be a positive integer"}
		}
		limit = l
	}

	return page, limit, nil
}
