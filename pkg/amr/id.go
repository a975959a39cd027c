package amr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrUnknownIDScheme is returned by ConvertID for ids of no known corpus.
var ErrUnknownIDScheme = errors.New("unknown id scheme")

var (
	wsjID = regexp.MustCompile(`wsj_([0-9]+)\.([0-9]+)`)
	lppID = regexp.MustCompile(`lpp_1943\.([0-9]+)`)
)

// ConvertID maps corpus sentence ids to fixed-width numeric ids:
// "wsj_<doc>.<snt>" becomes "2" + doc (4 digits) + snt (3 digits) and
// "lpp_1943.<snt>" becomes "1" + snt (4 digits) + "0".
func ConvertID(id string) (string, error) {
	if m := wsjID.FindStringSubmatch(id); m != nil {
		doc, err1 := strconv.Atoi(m[1])
		snt, err2 := strconv.Atoi(m[2])
		if err := errors.Join(err1, err2); err != nil {
			return "", fmt.Errorf("convert id %s: %w", id, err)
		}
		return fmt.Sprintf("2%04d%03d", doc, snt), nil
	}
	if m := lppID.FindStringSubmatch(id); m != nil {
		snt, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("convert id %s: %w", id, err)
		}
		return fmt.Sprintf("1%04d0", snt), nil
	}
	return "", fmt.Errorf("convert id %s: %w", id, ErrUnknownIDScheme)
}
