package idutil

import (
	"strings"

	"github.com/bwmarrin/snowflake"
)

var ticketNode = mustNode(1)

func mustNode(id int64) *snowflake.Node {
	node, err := snowflake.NewNode(id)
	if err != nil {
		panic(err)
	}

	return node
}

// NewTicketNumber returns a short, human-facing support ticket number.
func NewTicketNumber() string {
	return "TKT-" + strings.ToUpper(ticketNode.Generate().Base36())
}
