// Package schedule provides helpers for scheduled interview sessions.
package schedule

import (
	"math/rand/v2"
	"strings"
)

const meetLinkChars = "abcdefghijklmnopqrstuvwxyz"

// meetLinkGroups are the Google Meet-style code group lengths (xxx-xxxx-xxx).
var meetLinkGroups = []int{3, 4, 3}

// NewMeetLink synthesizes a Google Meet-style link. The code is cosmetic:
// it is not registered with any meeting service and collisions are not
// checked.
func NewMeetLink() string {
	var sb strings.Builder
	sb.WriteString("https://meet.google.com/")
	for i, groupLen := range meetLinkGroups {
		if i > 0 {
			sb.WriteByte('-')
		}
		for j := 0; j < groupLen; j++ {
			sb.WriteByte(meetLinkChars[rand.IntN(len(meetLinkChars))])
		}
	}
	return sb.String()
}
