package repo

import "github.com/google/uuid"

// canonicalID normalizes a path id to the uuid text form. Anything that is
// not a uuid cannot match a row and reports false.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
