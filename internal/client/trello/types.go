// Package trello provides types for the Trello REST API client.
package trello

import "encoding/json"

// Board is a top-level Trello board.
type Board struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Desc   *string `json:"desc,omitempty"`
	URL    *string `json:"url,omitempty"`
	Closed bool    `json:"closed"`
}

// List is an ordered column within a board.
type List struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	BoardID string  `json:"idBoard"`
	Closed  bool    `json:"closed"`
	Pos     float64 `json:"pos"`
}

// Card is a single task within a list.
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Desc      *string  `json:"desc,omitempty"`
	ListID    string   `json:"idList"`
	BoardID   string   `json:"idBoard"`
	Due       *string  `json:"due,omitempty"`
	Closed    bool     `json:"closed"`
	URL       *string  `json:"url,omitempty"`
	Pos       float64  `json:"pos"`
	LabelIDs  []string `json:"idLabels"`
	MemberIDs []string `json:"idMembers"`
}

// UnmarshalJSON decodes a card and normalizes absent or null label and member
// collections to empty slices, so they always encode as [].
func (c *Card) UnmarshalJSON(data []byte) error {
	type cardAlias Card
	var decoded cardAlias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.LabelIDs == nil {
		decoded.LabelIDs = []string{}
	}
	if decoded.MemberIDs == nil {
		decoded.MemberIDs = []string{}
	}
	*c = Card(decoded)
	return nil
}

// Label is a colored tag defined on a board.
type Label struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// Member is the authenticated user as reported by the auth check.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// CardUpdate carries the optional fields of a card update. Name and ListID
// count only when non-empty; the other fields count whenever non-nil, and an
// empty value clears the field remotely.
type CardUpdate struct {
	Name      *string
	Desc      *string
	Due       *string
	ListID    *string
	LabelIDs  *string // comma-separated label ids
	MemberIDs *string // comma-separated member ids
}
